package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
	"github.com/vovakirdan/cosmic-collision/internal/platform/tui"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the tuning of every difficulty tier",
	Long: `Prints paddle width, ball velocity, grid rows, effect duration,
drop modifier and block toughness rates for each tier, after applying the
loaded config's overrides.`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func runTiers(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(tui.TierColumns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, tier := range difficulty.Tiers {
		s, err := cfg.SettingsFor(tier)
		if err != nil {
			return err
		}
		p, err := difficulty.PolicyFor(tier)
		if err != nil {
			return err
		}
		t.Row(tui.TierRow(s, p)...)
	}

	fmt.Println(t)
	return nil
}
