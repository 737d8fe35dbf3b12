package main

import (
	"testing"

	"github.com/vovakirdan/cosmic-collision/internal/breakout"
	"github.com/vovakirdan/cosmic-collision/internal/config"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

func TestAutopilot(t *testing.T) {
	w := breakout.NewWorld(config.DefaultWorldConfig(), breakout.WithClock(&breakout.ManualClock{}))
	if err := w.Start(difficulty.Medium); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if in := autopilot(w); !in.Launch || in.Left || in.Right {
		t.Errorf("resting ball should only launch, got %+v", in)
	}

	w.Update(1.0/60, breakout.Input{Launch: true})
	b := w.Balls()[0]

	b.X = 10
	b.VY = -5
	if in := autopilot(w); !in.Left {
		t.Errorf("ball on the left should steer left, got %+v", in)
	}

	b.X = w.Config().World.Width - 10
	if in := autopilot(w); !in.Right {
		t.Errorf("ball on the right should steer right, got %+v", in)
	}

	p := w.Paddle()
	b.X = p.CenterX()
	if in := autopilot(w); in.Left || in.Right {
		t.Errorf("ball above paddle centre should hold still, got %+v", in)
	}
}
