package patchwork

import "math"

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle encloses no area. Rectangles with
// negative width or height are empty.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset returns r with every edge moved inwards by d. A negative d grows the
// rectangle. The result is not normalized: insetting by more than half the
// width or height yields a rectangle with negative width or height, which
// [Rect.IsEmpty] reports as empty.
func (r Rect) Inset(d float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 + d,
		Y0: r.Y0 + d,
		X1: r.X1 - d,
		Y1: r.Y1 - d,
	}
}

// IsInf reports whether at least one coordinate is infinite.
func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}
