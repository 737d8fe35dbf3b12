package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmic-collision/internal/config"
	"github.com/vovakirdan/cosmic-collision/internal/core"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"pause", runeKey("p"), core.ActionPause},
		{"restart", runeKey("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHeldInputSmoothing(t *testing.T) {
	var h heldInput
	h.press(core.ActionLeft)

	for i := range holdFrames {
		in := h.next()
		if !in.Left || in.Right {
			t.Fatalf("frame %d: expected left held, got %+v", i, in)
		}
	}
	if in := h.next(); in.Left {
		t.Error("left should be released after holdFrames without a repeat")
	}

	h.press(core.ActionLeft)
	h.press(core.ActionRight)
	if in := h.next(); in.Left || !in.Right {
		t.Errorf("opposite key should replace the held direction, got %+v", in)
	}

	h.press(core.ActionLaunch)
	if in := h.next(); !in.Launch {
		t.Error("launch should be delivered on the next frame")
	}
	if in := h.next(); in.Launch {
		t.Error("launch should be consumed once")
	}

	h.reset()
	if in := h.next(); in.Left || in.Right || in.Launch {
		t.Errorf("reset should release everything, got %+v", in)
	}
}

func TestProjection(t *testing.T) {
	field := core.NewRect(1, 2, 80, 20)
	p := newProjection(field, 800, 700)

	if got := p.col(0); got != 1 {
		t.Errorf("col(0) = %d, expected 1", got)
	}
	if got := p.col(800); got != 80 {
		t.Errorf("col(800) clamps to last column, got %d", got)
	}
	if got := p.col(400); got != 41 {
		t.Errorf("col(400) = %d, expected 41", got)
	}
	// y is up in the world and down on screen.
	if got := p.row(700); got != 2 {
		t.Errorf("row(700) = %d, expected 2", got)
	}
	if got := p.row(0); got != 21 {
		t.Errorf("row(0) clamps to last row, got %d", got)
	}

	r := p.rect(core.Box{X: 0, Y: 666, W: 100, H: 34})
	if r.X != 1 || r.Y != 2 || r.W != 10 || r.H != 1 {
		t.Errorf("rect() = %+v, expected {1 2 10 1}", r)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		World:    config.DefaultWorldConfig(),
		Seed:     42,
		TickRate: 60,
		Width:    100,
		Height:   32,
	})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelPhaseFlow(t *testing.T) {
	m := newTestModel(t)
	if m.phase != phasePicker {
		t.Fatalf("expected picker, got %v", m.phase)
	}
	if got := m.picker.Selected(); got != difficulty.Medium {
		t.Errorf("picker should start on Medium, got %v", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phasePlaying {
		t.Fatalf("expected playing after confirm, got %v", m.phase)
	}
	if m.world.Tier() != difficulty.Easy {
		t.Errorf("expected Easy world, got %v", m.world.Tier())
	}

	m = send(m, runeKey("p"))
	if m.phase != phasePaused {
		t.Fatalf("expected paused, got %v", m.phase)
	}
	before := m.clock.Now()
	m = send(m, TickMsg{})
	if m.clock.Now() != before {
		t.Error("clock should not advance while paused")
	}

	m = send(m, runeKey("p"))
	m = send(m, TickMsg{})
	if m.clock.Now() <= before {
		t.Error("clock should advance while playing")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.phase != phasePicker {
		t.Errorf("expected picker after back, got %v", m.phase)
	}

	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelPresetTierSkipsPicker(t *testing.T) {
	hard := difficulty.Hard
	m := NewModel(Options{World: config.DefaultWorldConfig(), Tier: &hard, Seed: 7})
	if m.phase != phasePlaying || m.world.Tier() != difficulty.Hard {
		t.Errorf("expected Hard game in progress, got phase %v", m.phase)
	}
}

func TestModelLaunchMovesBall(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	y := m.world.Balls()[0].Y
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})

	if b := m.world.Balls()[0]; b.Resting || b.Y <= y {
		t.Errorf("ball should be in flight and rising, got %+v", *b)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	if v := m.View(); !strings.Contains(v, "Medium") {
		t.Error("picker view should list tiers")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	v := m.View()
	for _, want := range []string{"SCORE 0", "LEVEL 1", "Medium", string(ballChar), string(paddleChar)} {
		if !strings.Contains(v, want) {
			t.Errorf("game view missing %q", want)
		}
	}

	m = send(m, runeKey("p"))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show overlay")
	}

	m = send(m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should show a warning")
	}
}
