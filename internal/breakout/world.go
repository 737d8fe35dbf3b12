// Package breakout is the Cosmic Collision simulation core: a paddle,
// one or more balls, a block grid and falling power-ups, advanced one frame
// at a time by World.Update.
package breakout

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-collision/internal/config"
	"github.com/vovakirdan/cosmic-collision/internal/core"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// Input is the per-frame player intent.
type Input struct {
	Left   bool
	Right  bool
	Launch bool
}

// InputFrom maps semantic actions to simulation input.
func InputFrom(f core.InputFrame) Input {
	return Input{
		Left:   f.Has(core.ActionLeft),
		Right:  f.Has(core.ActionRight),
		Launch: f.Has(core.ActionLaunch),
	}
}

// Option configures a World.
type Option func(*World)

// WithClock sets the time source for effect deadlines.
func WithClock(c Clock) Option {
	return func(w *World) {
		if c != nil {
			w.clock = c
		}
	}
}

// WithRand sets the random source for grid generation, drops and rolls.
func WithRand(r Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithLogger sets the logger for gameplay events. Nil discards.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithOverrides merges s onto the settings of tier t when a game starts,
// on top of any override in the config.
func WithOverrides(t difficulty.Tier, s difficulty.Settings) Option {
	return func(w *World) {
		w.overrides[t] = s
	}
}

// World is the aggregate root of a game. It is not safe for concurrent
// use; the owner calls Update once per frame.
type World struct {
	cfg       config.WorldConfig
	clock     Clock
	rng       Rand
	logger    *log.Logger
	overrides map[difficulty.Tier]difficulty.Settings

	started  bool
	tier     difficulty.Tier
	settings difficulty.Settings
	policy   difficulty.Policy

	paddle   *Paddle
	balls    []*Ball
	blocks   []*Block
	powerUps []*PowerUp

	score int
	lives int
	level int
	frame uint64

	// Launch velocity for new balls, grown by level progression.
	ballVX, ballVY float64

	fx effects
}

// NewWorld creates an idle world. Call Start to begin a game.
func NewWorld(cfg config.WorldConfig, opts ...Option) *World {
	cfg.Normalize()
	w := &World{
		cfg:       cfg,
		clock:     NewMonotonicClock(),
		rng:       NewSimpleRNG(1),
		logger:    log.New(io.Discard),
		overrides: make(map[difficulty.Tier]difficulty.Settings),
		paddle:    &Paddle{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins a new game on the given tier: score 0, level 1, full lives,
// no effects, a centred paddle with one resting ball and a fresh grid.
func (w *World) Start(t difficulty.Tier) error {
	s, err := w.cfg.SettingsFor(t)
	if err != nil {
		return fmt.Errorf("breakout: start: %w", err)
	}
	if o, ok := w.overrides[t]; ok {
		s = s.Merge(o)
	}
	p, err := difficulty.PolicyFor(t)
	if err != nil {
		return fmt.Errorf("breakout: start: %w", err)
	}

	w.tier = t
	w.settings = s
	w.policy = p
	w.started = true

	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.level = 1
	w.frame = 0
	w.fx = effects{}
	w.powerUps = nil

	w.ballVX = float64(s.BallVX)
	w.ballVY = float64(s.BallVY)

	geo := w.cfg.World
	width := float64(s.PaddleWidth)
	w.paddle = &Paddle{
		X:      geo.Width/2 - width/2,
		Y:      geo.PaddleY,
		Width:  width,
		Height: geo.PaddleHeight,
		Speed:  s.PaddleSpeed,
	}

	w.buildLevel()
	w.respawnBall()
	w.logger.Info("game started", "tier", t, "blocks", len(w.blocks))
	return nil
}

// RestartLevel rebuilds the current level's grid, clears pickups and
// temporary effects and puts one resting ball on the paddle. Score, lives
// and level are kept.
func (w *World) RestartLevel() {
	if !w.started {
		return
	}
	w.clearTemporaryEffects()
	w.buildLevel()
	w.respawnBall()
	w.logger.Debug("level restarted", "level", w.level)
}

// Update advances the world by one frame. dt is the frame time in seconds
// and only affects paddle and pickup motion; balls move by their velocity
// once per frame. A finished game is left untouched.
func (w *World) Update(dt float64, in Input) {
	if !w.started || w.lives <= 0 {
		return
	}
	now := w.clock.Now()
	w.frame++

	w.expireEffects(now)

	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	w.paddle.Move(dir, dt, w.cfg.World.Width)

	w.updateBalls(in.Launch)

	if len(w.balls) == 0 {
		w.lives--
		w.logger.Debug("life lost", "lives", w.lives, "level", w.level)
		w.respawnBall()
	}

	if w.fx.explosive {
		if ib := impactBlock(w.balls, w.blocks); ib != nil {
			n := explodeAround(ib, w.blocks, w.cfg.PowerUps.ExplosionRadius)
			if n > 0 {
				w.logger.Debug("explosion", "destroyed", n)
			}
		}
	}

	w.collide()
	w.removeDestroyed(now)
	w.updatePowerUps(dt, now)

	if !w.hasDestructibleBlocks() {
		w.levelUp(now)
	}
}

// updateBalls keeps resting balls on the paddle, moves the others and
// drops the ones that fell out of the world.
func (w *World) updateBalls(launch bool) {
	geo := w.cfg.World
	kept := w.balls[:0]
	for _, b := range w.balls {
		if b.Resting {
			w.placeOnPaddle(b)
			if launch {
				b.Resting = false
			}
		} else {
			b.Update(geo.Width, geo.Height)
		}
		if b.Lost() {
			continue
		}
		kept = append(kept, b)
	}
	clear(w.balls[len(kept):])
	w.balls = kept
}

// collide bounces every moving ball off the blocks it touches and then off
// the paddle. The paddle only reflects a descending ball.
func (w *World) collide() {
	for _, b := range w.balls {
		if b.Resting {
			continue
		}
		for _, bl := range w.blocks {
			if bl.Destroyed {
				continue
			}
			b.Collide(bl)
		}
		if b.VY < 0 {
			b.Collide(w.paddle)
		}
	}
}

// removeDestroyed drops destroyed blocks, scoring and rolling a pickup for
// each one in list order.
func (w *World) removeDestroyed(now time.Duration) {
	kept := w.blocks[:0]
	for _, bl := range w.blocks {
		if !bl.Destroyed {
			kept = append(kept, bl)
			continue
		}
		w.score++
		w.tryDrop(bl, now)
	}
	clear(w.blocks[len(kept):])
	w.blocks = kept
}

func (w *World) hasDestructibleBlocks() bool {
	for _, bl := range w.blocks {
		if !bl.Indestructible {
			return true
		}
	}
	return false
}

// levelUp advances to the next level: bonus life roll, tier progression,
// a taller grid and a fresh resting ball.
func (w *World) levelUp(now time.Duration) {
	w.level++

	if w.rng.Float64() < w.policy.ExtraLifeProbability(w.level) {
		w.lives++
		w.fx.bonusLifeUntil = now + w.cfg.Gameplay.BonusLifeDuration()
	}

	width := w.paddle.Width
	if w.fx.origPaddleW != 0 {
		width = w.fx.origPaddleW
	}
	prog := w.policy.LevelProgression(int(w.ballVX), int(w.ballVY), int(width))
	if prog.ResetEffects {
		w.clearTemporaryEffects()
		w.ballVX = float64(w.settings.BallVX)
		w.ballVY = float64(w.settings.BallVY)
	} else {
		w.ballVX = float64(prog.VX)
		w.ballVY = float64(prog.VY)
		if w.fx.origPaddleW != 0 {
			w.fx.origPaddleW = float64(prog.PaddleWidth)
		} else {
			w.paddle.Resize(float64(prog.PaddleWidth), w.cfg.World.Width)
		}
	}

	w.buildLevel()
	w.respawnBall()
	w.logger.Info("level cleared",
		"level", w.level, "lives", w.lives, "score", w.score,
		"vx", w.ballVX, "vy", w.ballVY, "paddle", w.paddle.Width)
}

// buildLevel replaces the grid with the one for the current level and
// clears falling pickups.
func (w *World) buildLevel() {
	geo := w.cfg.World
	w.blocks = BuildBlocks(w.settings.RowsForLevel(w.level), w.settings, geo.Width, geo.Height, w.rng)
	w.powerUps = nil
}

// respawnBall replaces all balls with one resting ball on the paddle.
func (w *World) respawnBall() {
	b := NewBall(0, 0, w.cfg.World.BallRadius, w.ballVX, w.ballVY, true)
	w.placeOnPaddle(b)
	w.balls = []*Ball{b}
}

func (w *World) placeOnPaddle(b *Ball) {
	b.X = w.paddle.CenterX()
	b.Y = w.paddle.Y + w.paddle.Height + b.Radius + 1
}

// Score returns the number of blocks destroyed in this game.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Level returns the current 1-based level.
func (w *World) Level() int { return w.level }

// Tier returns the tier of the running game.
func (w *World) Tier() difficulty.Tier { return w.tier }

// Settings returns the effective settings of the running game.
func (w *World) Settings() difficulty.Settings { return w.settings }

// Config returns the world tuning.
func (w *World) Config() config.WorldConfig { return w.cfg }

// GameOver reports whether the game has run out of lives.
func (w *World) GameOver() bool { return w.started && w.lives <= 0 }

// Started reports whether Start has succeeded.
func (w *World) Started() bool { return w.started }

// Paddle returns a copy of the paddle.
func (w *World) Paddle() Paddle { return *w.paddle }

// Balls returns the live balls. Callers must not modify them.
func (w *World) Balls() []*Ball { return w.balls }

// Blocks returns the remaining blocks. Callers must not modify them.
func (w *World) Blocks() []*Block { return w.blocks }

// PowerUps returns the falling pickups. Callers must not modify them.
func (w *World) PowerUps() []*PowerUp { return w.powerUps }

// ExplosiveActive reports whether explosive mode is running.
func (w *World) ExplosiveActive() bool { return w.fx.explosive }

// SpeedMultiplier returns the running ball speed multiplier, or 1 when
// none is active.
func (w *World) SpeedMultiplier() float64 {
	if w.fx.speedMult == 0 {
		return 1
	}
	return w.fx.speedMult
}

// BonusLifeVisible reports whether the extra-life indicator should show.
func (w *World) BonusLifeVisible() bool {
	return w.clock.Now() < w.fx.bonusLifeUntil
}

// State returns the HUD summary of the game.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		Lives:    w.lives,
		Level:    w.level,
		GameOver: w.GameOver(),
	}
}
