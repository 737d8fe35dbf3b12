package breakout

import (
	"time"

	"github.com/vovakirdan/cosmic-collision/internal/core"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// SampleKind draws a power-up kind from dist using one value of rng.
// Buckets are walked in PowerUpKinds order; a distribution without
// positive mass yields PaddleShrink.
func SampleKind(dist difficulty.Distribution, rng Rand) PowerUpKind {
	idx, ok := dist.Bucket(rng.Float64())
	if !ok {
		return PaddleShrink
	}
	return PowerUpKinds[idx]
}

// DropChance returns the per-block drop probability for a policy.
func DropChance(base float64, p difficulty.Policy) float64 {
	return core.ClampF(base*p.DropModifier, 0, 1)
}

// Effect is a running temporary effect with the time left on it.
type Effect struct {
	Kind      PowerUpKind
	Remaining time.Duration
}

// effects holds the deadlines of temporary effects. A zero multiplier or
// a zero original width means the effect is not running.
type effects struct {
	explosive      bool
	explosiveUntil time.Duration

	speedMult  float64
	speedUntil time.Duration

	origPaddleW float64
	paddleUntil time.Duration

	bonusLifeUntil time.Duration
}

// tryDrop rolls for a pickup where block b was removed.
func (w *World) tryDrop(b *Block, now time.Duration) {
	if w.rng.Float64() >= DropChance(w.cfg.PowerUps.DropProbability, w.policy) {
		return
	}
	kind := SampleKind(w.policy.Distribution(w.level), w.rng)
	size := w.cfg.PowerUps.Size
	w.powerUps = append(w.powerUps, &PowerUp{
		X:         b.X + b.W/2 - size/2,
		Y:         max(0, b.Y-size-2),
		Size:      size,
		Kind:      kind,
		FallSpeed: w.cfg.PowerUps.FallSpeed,
		ActiveAt:  now + w.cfg.PowerUps.SpawnDelayDuration(),
	})
	w.logger.Debug("power-up dropped", "kind", kind, "level", w.level)
}

// updatePowerUps moves pickups, drops the ones that left the world and
// applies the active ones touching the paddle.
func (w *World) updatePowerUps(dt float64, now time.Duration) {
	kept := w.powerUps[:0]
	for _, p := range w.powerUps {
		p.Fall(dt)
		if p.Gone() {
			continue
		}
		if p.Active(now) && p.Bounds().Overlaps(w.paddle.Bounds()) {
			p.Collected = true
			w.applyPowerUp(p.Kind, now)
			continue
		}
		kept = append(kept, p)
	}
	clear(w.powerUps[len(kept):])
	w.powerUps = kept
}

func (w *World) applyPowerUp(kind PowerUpKind, now time.Duration) {
	pu := w.cfg.PowerUps
	switch kind {
	case ExplosiveBall:
		w.fx.explosive = true
		w.fx.explosiveUntil = now + pu.ExplosiveDurationTime()
	case PaddleGrow:
		w.resizePaddle(float64(pu.ResizeDelta), now)
	case PaddleShrink:
		w.resizePaddle(-float64(pu.ResizeDelta), now)
	case ExtraLife:
		w.lives++
		w.fx.bonusLifeUntil = now + w.cfg.Gameplay.BonusLifeDuration()
	case SplitBall:
		w.balls = splitBalls(w.balls, w.ballVX, w.ballVY, w.fx.speedMult)
	case SpeedUp:
		w.setSpeedMultiplier(pu.SpeedUp, now)
	case SpeedDown:
		w.setSpeedMultiplier(pu.SpeedDown, now)
	}
	w.logger.Debug("power-up collected", "kind", kind, "lives", w.lives, "balls", len(w.balls))
}

// resizePaddle changes the paddle width by delta within the configured
// bounds. The width before the first resize is remembered so expiry can
// restore it; every resize pushes the deadline.
func (w *World) resizePaddle(delta float64, now time.Duration) {
	pu := w.cfg.PowerUps
	if w.fx.origPaddleW == 0 {
		w.fx.origPaddleW = w.paddle.Width
	}
	width := core.ClampF(w.paddle.Width+delta, float64(pu.MinPaddleWidth), float64(pu.MaxPaddleWidth))
	w.paddle.Resize(width, w.cfg.World.Width)
	w.fx.paddleUntil = now + w.policy.EffectDuration
}

func (w *World) restorePaddle() {
	if w.fx.origPaddleW == 0 {
		return
	}
	w.paddle.Resize(w.fx.origPaddleW, w.cfg.World.Width)
	w.fx.origPaddleW = 0
	w.fx.paddleUntil = 0
}

// setSpeedMultiplier replaces any running multiplier. Velocities are
// recomputed from each ball's base, so the last writer wins.
func (w *World) setSpeedMultiplier(m float64, now time.Duration) {
	w.fx.speedMult = m
	w.fx.speedUntil = now + w.policy.EffectDuration
	for _, b := range w.balls {
		b.ApplyMultiplier(m)
	}
}

func (w *World) clearSpeedMultiplier() {
	if w.fx.speedMult == 0 {
		return
	}
	for _, b := range w.balls {
		b.RestoreBase()
	}
	w.fx.speedMult = 0
	w.fx.speedUntil = 0
}

// expireEffects ends every temporary effect whose deadline has passed.
func (w *World) expireEffects(now time.Duration) {
	if w.fx.explosive && now >= w.fx.explosiveUntil {
		w.fx.explosive = false
		w.logger.Debug("effect expired", "kind", ExplosiveBall)
	}
	if w.fx.speedMult != 0 && now >= w.fx.speedUntil {
		w.clearSpeedMultiplier()
		w.logger.Debug("effect expired", "kind", "speed")
	}
	if w.fx.origPaddleW != 0 && now >= w.fx.paddleUntil {
		w.restorePaddle()
		w.logger.Debug("effect expired", "kind", "paddle", "width", w.paddle.Width)
	}
}

// clearTemporaryEffects ends explosive mode, the speed multiplier and any
// paddle resize immediately.
func (w *World) clearTemporaryEffects() {
	w.fx.explosive = false
	w.fx.explosiveUntil = 0
	w.clearSpeedMultiplier()
	w.restorePaddle()
}

// ActiveEffects lists running temporary effects with their remaining time.
func (w *World) ActiveEffects() []Effect {
	now := w.clock.Now()
	var out []Effect
	if w.fx.explosive {
		out = append(out, Effect{Kind: ExplosiveBall, Remaining: max(0, w.fx.explosiveUntil-now)})
	}
	if w.fx.speedMult != 0 {
		kind := SpeedUp
		if w.fx.speedMult < 1 {
			kind = SpeedDown
		}
		out = append(out, Effect{Kind: kind, Remaining: max(0, w.fx.speedUntil-now)})
	}
	if w.fx.origPaddleW != 0 {
		kind := PaddleGrow
		if w.paddle.Width < w.fx.origPaddleW {
			kind = PaddleShrink
		}
		out = append(out, Effect{Kind: kind, Remaining: max(0, w.fx.paddleUntil-now)})
	}
	return out
}
