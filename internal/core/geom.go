// Package core provides fundamental types shared by the simulation and the
// terminal shell: geometry, semantic input actions and a character screen
// buffer. It has no external dependencies.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a float axis-aligned rectangle in world pixels. X,Y is the corner
// with the smallest coordinates.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the largest x covered by the box.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the largest y covered by the box.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps returns true if the boxes share a region of positive or zero
// area. Touching edges count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X <= o.Right() && o.X <= b.Right() &&
		b.Y <= o.Top() && o.Y <= b.Top()
}

// CircleIntersects reports whether the circle centred at (cx, cy) with the
// given radius touches the box. The nearest point of the box to the centre
// is found by clamping; the circle intersects when that point lies within
// radius.
func (b Box) CircleIntersects(cx, cy, radius float64) bool {
	nx := ClampF(cx, b.X, b.Right())
	ny := ClampF(cy, b.Y, b.Top())
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= radius*radius
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
