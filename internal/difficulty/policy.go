package difficulty

import (
	"fmt"
	"math"
	"time"
)

// Progression is the outcome of a level-up. When ResetEffects is set the
// caller clears temporary effects and restores the tier's base ball speed;
// otherwise it applies VX, VY and PaddleWidth.
type Progression struct {
	VX           int
	VY           int
	PaddleWidth  int
	ResetEffects bool
}

// Policy holds the per-tier rules for power-up odds, effect durations and
// level progression. It is plain data; all methods are pure.
type Policy struct {
	Tier Tier

	EffectDuration time.Duration
	DropModifier   float64
	Base           Distribution

	ExtraLifeBase  float64
	ExtraLifeDecay float64
	ExtraLifeFloor float64

	ResetOnLevelUp bool
	SpeedStep      int
	MaxVX          int
	MaxVY          int
	PaddleStep     int
	MinPaddle      int

	SkewPerLevel float64
	SkewMax      float64
}

var policyTable = [...]Policy{
	Easy: {
		Tier:           Easy,
		EffectDuration: 7 * time.Second,
		DropModifier:   1.25,
		Base:           Distribution{0.40, 0.10, 0.15, 0.20, 0.10, 0.03, 0.02},
		ExtraLifeBase:  0.30,
		ExtraLifeFloor: 0.30,
		ResetOnLevelUp: true,
	},
	Medium: {
		Tier:           Medium,
		EffectDuration: 5 * time.Second,
		DropModifier:   1.0,
		Base:           Distribution{0.30, 0.20, 0.15, 0.15, 0.12, 0.05, 0.03},
		ExtraLifeBase:  0.15,
		ExtraLifeDecay: 0.01,
		ExtraLifeFloor: 0.05,
		SpeedStep:      1,
		MaxVX:          8,
		MaxVY:          9,
		PaddleStep:     10,
		MinPaddle:      70,
		SkewPerLevel:   0.02,
		SkewMax:        0.15,
	},
	Hard: {
		Tier:           Hard,
		EffectDuration: 3 * time.Second,
		DropModifier:   0.7,
		Base:           Distribution{0.15, 0.45, 0.15, 0.05, 0.12, 0.06, 0.02},
		ExtraLifeBase:  0.08,
		ExtraLifeDecay: 0.01,
		ExtraLifeFloor: 0.02,
		SpeedStep:      1,
		MaxVX:          10,
		MaxVY:          11,
		PaddleStep:     15,
		MinPaddle:      60,
		SkewPerLevel:   0.04,
		SkewMax:        0.30,
	},
}

// PolicyFor returns the policy for a tier.
func PolicyFor(t Tier) (Policy, error) {
	if !t.Valid() {
		return Policy{}, fmt.Errorf("%w %d", ErrUnknownTier, int(t))
	}
	return policyTable[t], nil
}

// ExtraLifeProbability returns the chance of a bonus life when reaching the
// given level. The first level-up (level 2) uses the base chance.
func (p Policy) ExtraLifeProbability(level int) float64 {
	steps := level - 2
	if steps < 0 {
		steps = 0
	}
	prob := p.ExtraLifeBase - float64(steps)*p.ExtraLifeDecay
	if prob < p.ExtraLifeFloor {
		prob = p.ExtraLifeFloor
	}
	return math.Max(0, math.Min(1, prob))
}

// LevelProgression computes the ball velocity and paddle width for the
// next level from the current ones.
func (p Policy) LevelProgression(vx, vy, paddleWidth int) Progression {
	if p.ResetOnLevelUp {
		return Progression{VX: vx, VY: vy, PaddleWidth: paddleWidth, ResetEffects: true}
	}

	width := paddleWidth - p.PaddleStep
	if width < p.MinPaddle {
		width = p.MinPaddle
	}
	if paddleWidth < p.MinPaddle {
		width = paddleWidth
	}

	return Progression{
		VX:          stepSpeed(vx, p.SpeedStep, p.MaxVX),
		VY:          stepSpeed(vy, p.SpeedStep, p.MaxVY),
		PaddleWidth: width,
	}
}

// stepSpeed adds step to |v| up to limit, keeping the sign of v.
func stepSpeed(v, step, limit int) int {
	sign := 1
	if v < 0 {
		sign = -1
		v = -v
	}
	if v < limit {
		v += step
		if v > limit {
			v = limit
		}
	}
	return sign * v
}

// SkewForLevel shifts weight from the useful cluster toward shrink by
// (level-1)*SkewPerLevel of the total mass, capped at SkewMax.
func (p Policy) SkewForLevel(d Distribution, level int) Distribution {
	skew := float64(level-1) * p.SkewPerLevel
	if skew > p.SkewMax {
		skew = p.SkewMax
	}
	if skew <= 0 {
		return d
	}
	return d.shiftToShrink(skew * d.Sum())
}

// Distribution returns the base distribution skewed for the given level.
func (p Policy) Distribution(level int) Distribution {
	return p.SkewForLevel(p.Base, level)
}
