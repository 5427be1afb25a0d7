// Package core provides fundamental types and utilities shared by the simulation
// and its presenters. It contains no external dependencies (especially no Bubble Tea
// or Ebitengine) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in board pixels.
// Bounds are half-open: [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Intersects reports whether the two boxes overlap with nonzero area.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FloorDiv divides rounding toward negative infinity.
// Used when projecting board coordinates that may be negative onto the screen grid.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
