package breakout

import (
	"time"

	"github.com/vovakirdan/cosmic-collision/internal/core"
)

// Collidable is anything a ball can bounce off.
type Collidable interface {
	Bounds() core.Box
	OnBallHit(b *Ball)
}

// Paddle is the player-controlled bar. X,Y is its bottom-left corner.
type Paddle struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // px per second
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// OnBallHit has no effect on the paddle.
func (p *Paddle) OnBallHit(*Ball) {}

// Move shifts the paddle by dir*Speed*dt and keeps it inside the world.
// dir is -1 (left), 0 or 1 (right).
func (p *Paddle) Move(dir, dt, worldW float64) {
	p.X += dir * p.Speed * dt
	p.clamp(worldW)
}

// Resize changes the width around the current centre and clamps the
// result into the world.
func (p *Paddle) Resize(width, worldW float64) {
	center := p.CenterX()
	p.Width = width
	p.X = center - width/2
	p.clamp(worldW)
}

func (p *Paddle) clamp(worldW float64) {
	p.X = core.ClampF(p.X, 0, max(0, worldW-p.Width))
}

// Ball is a circle with a current and a base velocity in px per frame.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64

	// BaseVX and BaseVY are the velocity before any temporary multiplier.
	BaseVX, BaseVY float64

	Resting bool // attached to the paddle, waiting for launch
}

// NewBall creates a ball whose base velocity equals its velocity.
func NewBall(x, y, radius, vx, vy float64, resting bool) *Ball {
	return &Ball{
		X: x, Y: y, Radius: radius,
		VX: vx, VY: vy,
		BaseVX: vx, BaseVY: vy,
		Resting: resting,
	}
}

// Block is a destructible (or indestructible) brick. X,Y is its
// bottom-left corner.
type Block struct {
	X, Y, W, H     float64
	HP             int
	Indestructible bool
	Destroyed      bool
}

// NewBlock creates a block; hp below 1 is raised to 1.
func NewBlock(x, y, w, h float64, hp int, indestructible bool) *Block {
	return &Block{X: x, Y: y, W: w, H: h, HP: max(1, hp), Indestructible: indestructible}
}

// Bounds returns the block rectangle.
func (b *Block) Bounds() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the centre point of the block.
func (b *Block) Center() (float64, float64) {
	return b.Bounds().Center()
}

// OnBallHit damages the block by one hit.
func (b *Block) OnBallHit(*Ball) {
	b.Hit()
}

// Hit removes one HP. The block is destroyed when HP reaches zero.
// Indestructible and already destroyed blocks ignore hits.
func (b *Block) Hit() {
	if b.Destroyed || b.Indestructible {
		return
	}
	b.HP--
	if b.HP <= 0 {
		b.HP = 0
		b.Destroyed = true
	}
}

// ForceDestroy destroys the block regardless of HP, unless it is
// indestructible.
func (b *Block) ForceDestroy() {
	if b.Indestructible {
		return
	}
	b.HP = 0
	b.Destroyed = true
}

// PowerUpKind identifies a power-up effect. The order matches the sampling
// order of difficulty.Distribution.
type PowerUpKind int

const (
	PaddleGrow PowerUpKind = iota
	PaddleShrink
	ExplosiveBall
	ExtraLife
	SplitBall
	SpeedUp
	SpeedDown
	powerUpKindCount
)

// PowerUpKinds lists every kind in sampling order.
var PowerUpKinds = []PowerUpKind{
	PaddleGrow, PaddleShrink, ExplosiveBall, ExtraLife, SplitBall, SpeedUp, SpeedDown,
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PaddleGrow:
		return "Grow"
	case PaddleShrink:
		return "Shrink"
	case ExplosiveBall:
		return "Explosive"
	case ExtraLife:
		return "Life"
	case SplitBall:
		return "Split"
	case SpeedUp:
		return "Fast"
	case SpeedDown:
		return "Slow"
	default:
		return "?"
	}
}

// PowerUp is a falling pickup. X,Y is its bottom-left corner.
type PowerUp struct {
	X, Y      float64
	Size      float64
	Kind      PowerUpKind
	FallSpeed float64       // px per second
	ActiveAt  time.Duration // clock time after which it can be collected
	Collected bool
}

// Bounds returns the pickup rectangle.
func (p *PowerUp) Bounds() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Active reports whether the spawn delay has elapsed.
func (p *PowerUp) Active(now time.Duration) bool {
	return now >= p.ActiveAt
}

// Fall moves the pickup down by FallSpeed*dt.
func (p *PowerUp) Fall(dt float64) {
	p.Y -= p.FallSpeed * dt
}

// Gone reports whether the pickup has fallen out of the world.
func (p *PowerUp) Gone() bool {
	return p.Y+p.Size < 0
}
