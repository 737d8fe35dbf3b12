package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmic-collision/internal/config"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// TierColumns are the headers of the tier table, shared with the CLI.
var TierColumns = []string{"Tier", "Paddle", "Ball", "Rows", "Effects", "Drops", "Hard", "Solid"}

// TierRow formats one tier's settings and policy for display.
func TierRow(s difficulty.Settings, p difficulty.Policy) []string {
	rows := fmt.Sprintf("%d", s.BaseRows)
	if s.RowsPerLevel > 0 {
		rows = fmt.Sprintf("%d+%d/lvl", s.BaseRows, s.RowsPerLevel)
	}
	solid := "-"
	if s.AllowUnbreak {
		solid = fmt.Sprintf("%.0f%%", s.UnbreakRate*100)
	}
	return []string{
		s.Tier.Title(),
		fmt.Sprintf("%d", s.PaddleWidth),
		fmt.Sprintf("%d,%d", s.BallVX, s.BallVY),
		rows,
		p.EffectDuration.String(),
		fmt.Sprintf("x%.2f", p.DropModifier),
		fmt.Sprintf("%.0f%%", s.HardRate*100),
		solid,
	}
}

// tierPicker is the difficulty selection screen, a focused table with one
// row per tier.
type tierPicker struct {
	table table.Model
	tiers []difficulty.Tier
}

func newTierPicker(cfg config.WorldConfig, height int) tierPicker {
	widths := []int{8, 7, 6, 9, 8, 6, 5, 6}
	columns := make([]table.Column, len(TierColumns))
	for i, title := range TierColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	rows := make([]table.Row, 0, len(difficulty.Tiers))
	tiers := make([]difficulty.Tier, 0, len(difficulty.Tiers))
	for _, t := range difficulty.Tiers {
		s, err := cfg.SettingsFor(t)
		if err != nil {
			continue
		}
		p, err := difficulty.PolicyFor(t)
		if err != nil {
			continue
		}
		rows = append(rows, TierRow(s, p))
		tiers = append(tiers, t)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+3, max(4, height-8))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	// Start on Medium.
	if len(tiers) > 1 {
		t.SetCursor(1)
	}
	return tierPicker{table: t, tiers: tiers}
}

// Up moves the cursor up one tier.
func (p *tierPicker) Up() { p.table.MoveUp(1) }

// Down moves the cursor down one tier.
func (p *tierPicker) Down() { p.table.MoveDown(1) }

// Selected returns the tier under the cursor.
func (p tierPicker) Selected() difficulty.Tier {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.tiers) {
		return difficulty.Medium
	}
	return p.tiers[i]
}

// View renders the title and the tier table.
func (p tierPicker) View(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O S M I C   C O L L I S I O N"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Choose a difficulty"), width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(tableStyle.Render(p.table.View()), width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers a single line within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block within the given width.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
