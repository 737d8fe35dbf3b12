// Package config provides YAML-based tuning for the Cosmic Collision world:
// playfield dimensions, power-up constants and optional per-tier overrides
// of the difficulty table.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// WorldConfig contains all tuning for the simulation core.
type WorldConfig struct {
	World    WorldGeometry                  `yaml:"world"`
	Gameplay Gameplay                       `yaml:"gameplay"`
	PowerUps PowerUpConfig                  `yaml:"powerups"`
	Tiers    map[string]difficulty.Settings `yaml:"tiers"`
}

// WorldGeometry defines the playfield in world pixels (y grows upward).
type WorldGeometry struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PaddleY      float64 `yaml:"paddle_y"`
	PaddleHeight float64 `yaml:"paddle_height"`
	BallRadius   float64 `yaml:"ball_radius"`
}

// Gameplay defines lives and timing parameters.
type Gameplay struct {
	Lives            int `yaml:"lives"`
	TickRate         int `yaml:"tick_rate"`
	BonusLifeDisplay int `yaml:"bonus_life_display_ms"`
}

// PowerUpConfig defines power-up drop and effect constants.
type PowerUpConfig struct {
	DropProbability   float64 `yaml:"drop_probability"`
	SpawnDelay        int     `yaml:"spawn_delay_ms"`
	FallSpeed         float64 `yaml:"fall_speed"`
	Size              float64 `yaml:"size"`
	ResizeDelta       int     `yaml:"resize_delta"`
	MinPaddleWidth    int     `yaml:"min_paddle_width"`
	MaxPaddleWidth    int     `yaml:"max_paddle_width"`
	SpeedUp           float64 `yaml:"speed_up"`
	SpeedDown         float64 `yaml:"speed_down"`
	ExplosiveDuration int     `yaml:"explosive_duration_ms"`
	ExplosionRadius   float64 `yaml:"explosion_radius"`
}

// DefaultWorldConfig returns the built-in tuning. It is used when neither a
// config file nor the embedded YAML can be decoded.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		World: WorldGeometry{
			Width:        960,
			Height:       720,
			PaddleY:      40,
			PaddleHeight: 20,
			BallRadius:   10,
		},
		Gameplay: Gameplay{
			Lives:            3,
			TickRate:         60,
			BonusLifeDisplay: 1500,
		},
		PowerUps: PowerUpConfig{
			DropProbability:   0.25,
			SpawnDelay:        300,
			FallSpeed:         140,
			Size:              22,
			ResizeDelta:       30,
			MinPaddleWidth:    50,
			MaxPaddleWidth:    260,
			SpeedUp:           1.5,
			SpeedDown:         0.6,
			ExplosiveDuration: 8000,
			ExplosionRadius:   90,
		},
	}
}

// SpawnDelayDuration returns the power-up spawn delay.
func (p PowerUpConfig) SpawnDelayDuration() time.Duration {
	return time.Duration(p.SpawnDelay) * time.Millisecond
}

// ExplosiveDurationTime returns how long explosive mode lasts.
func (p PowerUpConfig) ExplosiveDurationTime() time.Duration {
	return time.Duration(p.ExplosiveDuration) * time.Millisecond
}

// BonusLifeDuration returns how long the extra-life indicator stays visible.
func (g Gameplay) BonusLifeDuration() time.Duration {
	return time.Duration(g.BonusLifeDisplay) * time.Millisecond
}

// Normalize fills zero values from the defaults and clamps out-of-range
// values. It never fails.
func (c *WorldConfig) Normalize() {
	def := DefaultWorldConfig()

	if c.World.Width <= 0 {
		c.World.Width = def.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = def.World.Height
	}
	if c.World.PaddleY <= 0 {
		c.World.PaddleY = def.World.PaddleY
	}
	if c.World.PaddleHeight <= 0 {
		c.World.PaddleHeight = def.World.PaddleHeight
	}
	if c.World.BallRadius <= 0 {
		c.World.BallRadius = def.World.BallRadius
	}

	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Gameplay.TickRate <= 0 {
		c.Gameplay.TickRate = def.Gameplay.TickRate
	}
	if c.Gameplay.BonusLifeDisplay <= 0 {
		c.Gameplay.BonusLifeDisplay = def.Gameplay.BonusLifeDisplay
	}

	p := &c.PowerUps
	if p.DropProbability <= 0 {
		p.DropProbability = def.PowerUps.DropProbability
	}
	if p.DropProbability > 1 {
		p.DropProbability = 1
	}
	if p.SpawnDelay <= 0 {
		p.SpawnDelay = def.PowerUps.SpawnDelay
	}
	if p.FallSpeed <= 0 {
		p.FallSpeed = def.PowerUps.FallSpeed
	}
	if p.Size <= 0 {
		p.Size = def.PowerUps.Size
	}
	if p.ResizeDelta <= 0 {
		p.ResizeDelta = def.PowerUps.ResizeDelta
	}
	if p.MinPaddleWidth <= 0 {
		p.MinPaddleWidth = def.PowerUps.MinPaddleWidth
	}
	if p.MaxPaddleWidth < p.MinPaddleWidth {
		p.MaxPaddleWidth = max(def.PowerUps.MaxPaddleWidth, p.MinPaddleWidth)
	}
	if p.SpeedUp <= 1 {
		p.SpeedUp = def.PowerUps.SpeedUp
	}
	if p.SpeedDown <= 0 || p.SpeedDown >= 1 {
		p.SpeedDown = def.PowerUps.SpeedDown
	}
	if p.ExplosiveDuration <= 0 {
		p.ExplosiveDuration = def.PowerUps.ExplosiveDuration
	}
	if p.ExplosionRadius <= 0 {
		p.ExplosionRadius = def.PowerUps.ExplosionRadius
	}
}

// SettingsFor returns the difficulty table entry for a tier with any
// configured override merged on top.
func (c WorldConfig) SettingsFor(t difficulty.Tier) (difficulty.Settings, error) {
	base, err := difficulty.SettingsFor(t)
	if err != nil {
		return base, err
	}
	for name, o := range c.Tiers {
		tier, perr := difficulty.ParseTier(name)
		if perr != nil {
			continue
		}
		if tier == t {
			base = base.Merge(o)
		}
	}
	return base, nil
}

// Validate reports override keys that do not name a tier.
func (c WorldConfig) Validate() error {
	var bad []string
	for name := range c.Tiers {
		if _, err := difficulty.ParseTier(name); err != nil {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("config: %w: %s", difficulty.ErrUnknownTier, strings.Join(bad, ", "))
	}
	return nil
}
