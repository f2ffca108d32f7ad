// Package core provides the geometry and screen primitives shared by the
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// Y grows downwards, matching screen coordinates.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxFromCorners builds a box from its top-left and bottom-right corners.
func BoxFromCorners(x1, y1, x2, y2 float64) Box {
	return Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// OverlapsX reports whether the horizontal spans of two boxes overlap.
// Touching edges do not count.
func (b Box) OverlapsX(other Box) bool {
	return b.Right() > other.Left() && b.Left() < other.Right()
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	return b.OverlapsX(other) && b.Bottom() > other.Top() && b.Top() < other.Bottom()
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
