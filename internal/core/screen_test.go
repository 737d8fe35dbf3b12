package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColoredAndBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '█', ColorRed)
	if c := s.GetCell(3, 4); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red block", c)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 10, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}

	s.Clear()
	if c := s.GetCell(3, 4); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClipsAndCenters(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextColored(18, 0, "Hello", ColorCyan)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
	if s.GetCell(19, 0).Color != ColorCyan {
		t.Error("DrawTextColored should keep color")
	}

	s.DrawTextCentered(1, "LEVEL ♥", ColorDefault)
	if !strings.Contains(s.Row(1), "LEVEL ♥") {
		t.Errorf("row 1 = %q, expected centered text", s.Row(1))
	}
	if s.Get(6, 1) != 'L' {
		t.Errorf("centered text should start at x=6, row = %q", s.Row(1))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '#', ColorYellow)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorYellow {
				t.Errorf("DrawRect: cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 4) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)
	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrinking String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "AAA   " {
		t.Errorf("after enlarging Row(0) = %q", got)
	}
	if got := s.Row(-1); got != "      " {
		t.Errorf("out of bounds Row = %q, expected spaces", got)
	}
}
