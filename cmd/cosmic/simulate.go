package main

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cosmic-collision/internal/breakout"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

var (
	flagSimTier   string
	flagSimFrames int
	flagSimFPS    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot paddle",
	Long: `Runs the simulation without a terminal: the paddle follows the lowest
falling ball and launches whenever a ball is resting. Time advances by one
frame per step, so the same seed always gives the same result.

Prints a YAML summary including the snapshot hash.

Examples:
  cosmic simulate --tier easy --frames 3600 --seed 7
  cosmic simulate --tier hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimTier, "tier", "medium", "Difficulty tier: easy, medium, hard")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Number of frames to run")
	simulateCmd.Flags().IntVar(&flagSimFPS, "fps", 0, "Simulated frames per second (0 = config tick_rate)")
}

// simReport is the summary printed after a headless run.
type simReport struct {
	Tier      string  `yaml:"tier"`
	Seed      int64   `yaml:"seed"`
	Frames    uint64  `yaml:"frames"`
	Score     int     `yaml:"score"`
	Lives     int     `yaml:"lives"`
	Level     int     `yaml:"level"`
	GameOver  bool    `yaml:"game_over"`
	Balls     int     `yaml:"balls"`
	Blocks    int     `yaml:"blocks"`
	PowerUps  int     `yaml:"power_ups"`
	Explosive bool    `yaml:"explosive"`
	SpeedMult float64 `yaml:"speed_multiplier"`
	Hash      string  `yaml:"hash"`
}

func runSimulate(_ *cobra.Command, _ []string) error {
	tier, err := difficulty.ParseTier(flagSimTier)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("cosmic-sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := max(1, cmp.Or(flagSimFPS, cfg.Gameplay.TickRate))
	dt := time.Second / time.Duration(fps)

	clock := &breakout.ManualClock{}
	w := breakout.NewWorld(cfg,
		breakout.WithClock(clock),
		breakout.WithRand(breakout.NewSimpleRNG(seed)),
		breakout.WithLogger(logger),
	)
	if err := w.Start(tier); err != nil {
		return err
	}

	for range flagSimFrames {
		if w.GameOver() {
			break
		}
		clock.Advance(dt)
		w.Update(dt.Seconds(), autopilot(w))
	}

	snap := w.Snapshot()
	report := simReport{
		Tier:      tier.String(),
		Seed:      seed,
		Frames:    snap.Frame,
		Score:     w.Score(),
		Lives:     w.Lives(),
		Level:     w.Level(),
		GameOver:  w.GameOver(),
		Balls:     len(w.Balls()),
		Blocks:    len(w.Blocks()),
		PowerUps:  len(w.PowerUps()),
		Explosive: w.ExplosiveActive(),
		SpeedMult: w.SpeedMultiplier(),
		Hash:      fmt.Sprintf("%016x", snap.Hash()),
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(report)
}

// autopilot steers the paddle under the lowest ball that is falling, or
// the lowest ball overall, and launches resting balls.
func autopilot(w *breakout.World) breakout.Input {
	var in breakout.Input
	var target *breakout.Ball
	for _, b := range w.Balls() {
		if b.Resting {
			in.Launch = true
			continue
		}
		if target == nil || (b.VY < 0 && (target.VY >= 0 || b.Y < target.Y)) {
			target = b
		}
	}
	if target == nil {
		return in
	}

	p := w.Paddle()
	const deadZone = 4.0
	switch dx := target.X - p.CenterX(); {
	case dx < -deadZone:
		in.Left = true
	case dx > deadZone:
		in.Right = true
	}
	return in
}
