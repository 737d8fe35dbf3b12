// cosmic is Cosmic Collision, a brick-breaking game for the terminal.
//
// Usage:
//
//	cosmic play              - Pick a tier and play
//	cosmic serve             - Start SSH server for remote play
//	cosmic tiers             - Show the tuning of every tier
//	cosmic simulate          - Run a headless game and print its state
//
// Global flags:
//
//	--config <path> - World config YAML (default: search path, then embedded)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log-level     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-collision/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cosmic",
	Short: "Cosmic Collision - break blocks in your terminal",
	Long: `Cosmic Collision is a brick-breaking arcade game: keep the ball in
play with your paddle, clear every breakable block and catch the power-ups
that fall from the ones you destroy.

Available commands:
  play      - Choose a difficulty tier and play
  serve     - Start SSH server for remote play
  tiers     - Show paddle, ball and grid tuning per tier
  simulate  - Run a seeded headless game

Examples:
  cosmic play
  cosmic play --tier hard
  cosmic serve --ssh :2222
  cosmic simulate --tier easy --frames 3600 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the world config from --config or the search path.
func loadConfig() (config.WorldConfig, error) {
	return config.LoadWorld(flagConfig)
}
