package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmic-collision/internal/breakout"
	"github.com/vovakirdan/cosmic-collision/internal/core"
)

// Minimum terminal size for the playfield.
const (
	minScreenW = 40
	minScreenH = 16
)

// Visual characters for rendering
const (
	paddleChar = '═'
	ballChar   = '●'
	blockChar  = '█'
	solidChar  = '▓'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projection maps world pixels (y up) onto the playfield cells inside the
// border (y down).
type projection struct {
	field          core.Rect
	worldW, worldH float64
}

func newProjection(field core.Rect, worldW, worldH float64) projection {
	return projection{field: field, worldW: worldW, worldH: worldH}
}

// col returns the cell column for world x.
func (p projection) col(x float64) int {
	c := int(math.Floor(x / p.worldW * float64(p.field.W)))
	return p.field.X + core.Clamp(c, 0, p.field.W-1)
}

// row returns the cell row for world y.
func (p projection) row(y float64) int {
	r := int(math.Floor((p.worldH - y) / p.worldH * float64(p.field.H)))
	return p.field.Y + core.Clamp(r, 0, p.field.H-1)
}

// rect returns the cells covered by a world box, at least one cell.
func (p projection) rect(b core.Box) core.Rect {
	x0 := p.col(b.X)
	x1 := p.col(b.Right() - 0.001)
	y0 := p.row(b.Top() - 0.001)
	y1 := p.row(b.Y)
	return core.NewRect(x0, y0, max(1, x1-x0+1), max(1, y1-y0+1))
}

// blockColor picks a color from the remaining toughness.
func blockColor(b *breakout.Block) core.Color {
	switch {
	case b.Indestructible:
		return core.ColorGray
	case b.HP >= 3:
		return core.ColorBrightRed
	case b.HP == 2:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightCyan
	}
}

// kindGlyph returns the pickup glyph and color.
func kindGlyph(k breakout.PowerUpKind) (rune, core.Color) {
	switch k {
	case breakout.PaddleGrow:
		return 'W', core.ColorBrightGreen
	case breakout.PaddleShrink:
		return 'S', core.ColorRed
	case breakout.ExplosiveBall:
		return '*', core.ColorOrange
	case breakout.ExtraLife:
		return '♥', core.ColorBrightBlue
	case breakout.SplitBall:
		return '3', core.ColorBrightMagenta
	case breakout.SpeedUp:
		return '+', core.ColorYellow
	case breakout.SpeedDown:
		return '-', core.ColorCyan
	default:
		return '?', core.ColorDefault
	}
}

func tooSmall(s *core.Screen) bool {
	return s.Width() < minScreenW || s.Height() < minScreenH
}

// drawWorld renders the HUD on row 0 and the playfield below it.
func drawWorld(s *core.Screen, w *breakout.World) {
	s.Clear()
	if tooSmall(s) {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorBrightRed)
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	drawHUD(s, w)

	// Row 0 is the HUD.
	border := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(border, core.ColorGray)
	field := core.NewRect(border.X+1, border.Y+1, border.W-2, border.H-2)

	geo := w.Config().World
	proj := newProjection(field, geo.Width, geo.Height)

	for _, b := range w.Blocks() {
		glyph := blockChar
		if b.Indestructible {
			glyph = solidChar
		}
		r := proj.rect(b.Bounds())
		// Leave a gap column so neighbours stay distinguishable.
		if r.W > 2 {
			r.W--
		}
		s.DrawRect(r, glyph, blockColor(b))
	}

	for _, p := range w.PowerUps() {
		glyph, color := kindGlyph(p.Kind)
		cx, cy := p.Bounds().Center()
		s.SetColored(proj.col(cx), proj.row(cy), glyph, color)
	}

	paddle := w.Paddle()
	pr := proj.rect(paddle.Bounds())
	s.DrawRect(core.NewRect(pr.X, pr.Bottom()-1, pr.W, 1), paddleChar, core.ColorBrightBlue)

	ballColor := core.ColorBrightWhite
	if w.ExplosiveActive() {
		ballColor = core.ColorOrange
	}
	for _, b := range w.Balls() {
		s.SetColored(proj.col(b.X), proj.row(b.Y), ballChar, ballColor)
	}
}

func drawHUD(s *core.Screen, w *breakout.World) {
	st := w.State()
	left := fmt.Sprintf(" SCORE %d  LEVEL %d  %s", st.Score, st.Level, w.Tier().Title())
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := len([]rune(left)) + 2
	for _, e := range w.ActiveEffects() {
		glyph, color := kindGlyph(e.Kind)
		tag := fmt.Sprintf("[%c %s %s]", glyph, e.Kind, formatRemaining(e.Remaining))
		s.DrawTextColored(x, 0, tag, color)
		x += len([]rune(tag)) + 1
	}

	lives := fmt.Sprintf("LIVES %s ", hearts(st.Lives))
	if w.BonusLifeVisible() {
		lives = "+1 LIFE! " + lives
	}
	s.DrawTextColored(s.Width()-len([]rune(lives)), 0, lives, core.ColorBrightRed)
}

func hearts(n int) string {
	if n > 5 {
		return fmt.Sprintf("♥x%d", n)
	}
	return strings.Repeat("♥", max(0, n))
}

// drawOverlay writes centred lines over the playfield.
func drawOverlay(s *core.Screen, color core.Color, lines ...string) {
	top := s.Height()/2 - len(lines)/2
	for i, line := range lines {
		s.DrawTextCentered(top+i, line, color)
	}
}

// formatRemaining renders an effect countdown in whole seconds.
func formatRemaining(d time.Duration) string {
	return fmt.Sprintf("%.0fs", math.Ceil(d.Seconds()))
}
