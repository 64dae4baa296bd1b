// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box on the integer pixel grid.
// Positions are truncated to whole pixels before they become a Rect, so
// collision tests behave the same on every frontend.
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

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// CenterX returns the x-coordinate of the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Point is a position on the integer pixel grid.
type Point struct {
	X, Y int
}

// Vec2 is a continuous world-space position or displacement.
type Vec2 struct {
	X, Y float64
}

// Triangle is a filled three-point shape in world space.
type Triangle struct {
	A, B, C Vec2
}

// Contains reports whether p lies inside the triangle or on its edges.
// Works for either winding order.
func (t Triangle) Contains(p Vec2) bool {
	d1 := edgeSign(p, t.A, t.B)
	d2 := edgeSign(p, t.B, t.C)
	d3 := edgeSign(p, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Bounds returns the smallest float box enclosing the triangle as
// (minX, minY, maxX, maxY).
func (t Triangle) Bounds() (float64, float64, float64, float64) {
	minX := min(t.A.X, t.B.X, t.C.X)
	minY := min(t.A.Y, t.B.Y, t.C.Y)
	maxX := max(t.A.X, t.B.X, t.C.X)
	maxY := max(t.A.Y, t.B.Y, t.C.Y)
	return minX, minY, maxX, maxY
}

func edgeSign(p, a, b Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
