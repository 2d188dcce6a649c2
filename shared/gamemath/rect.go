package gamemath

// Rect is an axis-aligned bounding box. X, Y is the minimum corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the edge opposite Y.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Intersects reports whether the rectangles share a region of positive area.
// Rectangles that only touch along an edge or at a corner do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// FlipY converts a rectangle with y measured upward into screen space of the given height,
// where y grows downward.
func (r Rect) FlipY(height float64) Rect {
	return Rect{X: r.X, Y: height - r.Y - r.H, W: r.W, H: r.H}
}
