package patchwork

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) signedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// Outline returns the four corners of the rectangle covered by stroking l
// with the given width and butt caps. The corners always wind in the same
// direction relative to the line, so outlines of consecutive segments do not
// cancel out under a nonzero fill rule. A zero-length line yields a zero-area
// outline.
func (l Line) Outline(width float64) [4]Point {
	d := l.P1.Sub(l.P0)
	n := Vec2{}
	if h := d.Hypot(); h > 0 {
		n = d.Turn90().Mul(0.5 * width / h)
	}
	return [4]Point{
		l.P0.Translate(n),
		l.P1.Translate(n),
		l.P1.Translate(n.Negate()),
		l.P0.Translate(n.Negate()),
	}
}
