package main

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
	"github.com/vovakirdan/cosmic-collision/internal/platform/tui"
)

var (
	flagTier    string
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cosmic Collision",
	Long: `Start a game in the terminal. Without --tier a picker lets you choose
the difficulty.

Controls:
  ←/→ or A/D   - Move paddle
  Space        - Launch ball
  P            - Pause
  R            - Restart level (play again after game over)
  Esc/B        - Back to tier picker
  Q/Ctrl+C     - Quit

Tiers:
  easy   - Wide paddle, slow ball, 3 rows that reset each level
  medium - Rows grow each level, tougher blocks appear
  hard   - Narrow paddle, fast ball, unbreakable blocks

Examples:
  cosmic play
  cosmic play --tier easy
  cosmic play --seed 42 --config ./my-cosmic.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTier, "tier", "", "Difficulty tier: easy, medium, hard (default: picker)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second) (0 = config tick_rate)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tui.Options{
		World:    cfg,
		Seed:     flagSeed,
		TickRate: cmp.Or(flagFPS, cfg.Gameplay.TickRate),
	}

	if flagTier != "" {
		t, err := difficulty.ParseTier(flagTier)
		if err != nil {
			return err
		}
		opts.Tier = &t
	}

	// The alternate screen owns stdout and stderr, so logs only go to a file.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	opts.Logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cosmic",
		Level:           level,
	})

	opts.Width, opts.Height = 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width, opts.Height = w, h
	}

	return tui.Run(opts)
}
