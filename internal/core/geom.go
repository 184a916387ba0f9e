// Package core provides fundamental types and utilities for the arena.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// SphereOverlap reports whether two spheres touch or intersect.
// Compares squared center distance against the squared radius sum.
func SphereOverlap(a Vec3, ra float64, b Vec3, rb float64) bool {
	d := a.Sub(b)
	r := ra + rb
	return d.Dot(d) <= r*r
}

// ClampToArena keeps a body of radius r inside a square arena of the given half extent.
// X and Z are clamped independently; Y passes through.
func ClampToArena(p Vec3, r, half float64) Vec3 {
	lo, hi := -half+r, half-r
	return Vec3{ClampF(p.X(), lo, hi), p.Y(), ClampF(p.Z(), lo, hi)}
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
