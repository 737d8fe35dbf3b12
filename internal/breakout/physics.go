package breakout

import (
	"math"

	"github.com/vovakirdan/cosmic-collision/internal/core"
)

// CircleIntersectsRect reports whether a circle touches a rectangle,
// using the nearest point of the rectangle to the centre.
func CircleIntersectsRect(cx, cy, r float64, rect core.Box) bool {
	return rect.CircleIntersects(cx, cy, r)
}

// Update advances a moving ball by one frame of velocity and bounces it
// off the left, right and top walls. The bottom is open.
func (b *Ball) Update(worldW, worldH float64) {
	if b.Resting {
		return
	}
	b.X += b.VX
	b.Y += b.VY

	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX
	} else if b.X+b.Radius > worldW {
		b.X = worldW - b.Radius
		b.VX = -b.VX
	}
	if b.Y+b.Radius > worldH {
		b.Y = worldH - b.Radius
		b.VY = -b.VY
	}
}

// Intersects reports whether the ball touches the rectangle.
func (b *Ball) Intersects(rect core.Box) bool {
	return CircleIntersectsRect(b.X, b.Y, b.Radius, rect)
}

// Collide reflects the vertical velocity and notifies c when the ball
// touches it. It returns true on contact.
func (b *Ball) Collide(c Collidable) bool {
	if !b.Intersects(c.Bounds()) {
		return false
	}
	b.VY = -b.VY
	c.OnBallHit(b)
	return true
}

// Lost reports whether the ball has left the world through the bottom.
func (b *Ball) Lost() bool {
	return b.Y+b.Radius < 0
}

// ApplyMultiplier sets the speed to |base*m| keeping the current direction.
// The result is always derived from the base velocity, so repeated calls
// never compound. m <= 0 is ignored.
func (b *Ball) ApplyMultiplier(m float64) {
	if m <= 0 {
		return
	}
	b.VX = core.Sign(b.VX) * math.Abs(b.BaseVX*m)
	b.VY = core.Sign(b.VY) * math.Abs(b.BaseVY*m)
}

// RestoreBase sets the velocity back to the base velocity.
func (b *Ball) RestoreBase() {
	b.VX = core.Sign(b.BaseVX) * math.Abs(b.BaseVX)
	b.VY = core.Sign(b.BaseVY) * math.Abs(b.BaseVY)
}

// splitBalls replaces every ball with three moving balls at its position:
// one drifting left, one straight up and one drifting right. mult is the
// active speed multiplier, or 0 when none is active.
func splitBalls(balls []*Ball, activeVX, activeVY, mult float64) []*Ball {
	sx := max(2, math.Abs(activeVX))
	sy := max(3, math.Abs(activeVY))

	out := make([]*Ball, 0, len(balls)*3)
	for _, b := range balls {
		for _, vx := range [...]float64{-sx, 0, sx} {
			nb := NewBall(b.X, b.Y, b.Radius, vx, sy, false)
			if mult > 0 {
				nb.ApplyMultiplier(mult)
			}
			out = append(out, nb)
		}
	}
	return out
}

// impactBlock returns the first block, in list order, touched by any
// moving ball. Resting balls never impact.
func impactBlock(balls []*Ball, blocks []*Block) *Block {
	for _, b := range balls {
		if b.Resting {
			continue
		}
		for _, bl := range blocks {
			if b.Intersects(bl.Bounds()) {
				return bl
			}
		}
	}
	return nil
}

// explodeAround force destroys every destructible block other than center
// whose centre lies within radius of center's centre. It returns the
// number of blocks destroyed.
func explodeAround(center *Block, blocks []*Block, radius float64) int {
	cx, cy := center.Center()
	r2 := radius * radius
	n := 0
	for _, bl := range blocks {
		if bl == center || bl.Indestructible || bl.Destroyed {
			continue
		}
		bx, by := bl.Center()
		dx, dy := bx-cx, by-cy
		if dx*dx+dy*dy <= r2 {
			bl.ForceDestroy()
			n++
		}
	}
	return n
}
