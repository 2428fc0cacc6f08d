// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

// Vec2 is a position or offset in world units.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in world units.
// It doubles as a sprite-sheet source rectangle and a collision box.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps returns true if this rectangle overlaps with another.
// Touching edges do not overlap. Rectangles with a negative width or height
// are not normalised; the comparison is applied to them as-is.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
