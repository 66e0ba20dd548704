package patchwork

import (
	"iter"
	"slices"
)

// Polyline is a closed patch outline: the first and last points are equal.
// A polyline appended to an [Accumulator] is never modified again.
type Polyline []Point

// ClosePolyline returns a polyline visiting vertices in order and returning
// to the first one.
func ClosePolyline(vertices []Point) Polyline {
	if len(vertices) == 0 {
		return nil
	}
	pl := make(Polyline, 0, len(vertices)+1)
	pl = append(pl, vertices...)
	return append(pl, vertices[0])
}

// Closed reports whether the polyline ends where it starts.
func (pl Polyline) Closed() bool {
	return len(pl) >= 2 && pl[0] == pl[len(pl)-1]
}

// Vertices returns the polygon's vertices without the closing repeat.
func (pl Polyline) Vertices() []Point {
	if pl.Closed() {
		return pl[:len(pl)-1]
	}
	return pl
}

// Valid reports whether the polyline is closed and has at least three
// distinct vertices.
func (pl Polyline) Valid() bool {
	return pl.Closed() && len(pl) >= 4 && distinctPoints(pl.Vertices()) >= 3
}

// Segments returns an iterator over the polyline's edges.
func (pl Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Path returns the polyline as a closed path: a MoveTo to the first vertex,
// LineTo elements for the others and a ClosePath in place of the closing
// repeat.
func (pl Polyline) Path() Path {
	vs := pl.Vertices()
	if len(vs) == 0 {
		return nil
	}
	p := make(Path, 0, len(vs)+1)
	p.MoveTo(vs[0])
	for _, v := range vs[1:] {
		p.LineTo(v)
	}
	p.ClosePath()
	return p
}

// Area returns the signed area of the polygon, positive when it winds
// clockwise on the page.
func (pl Polyline) Area() float64 { return pl.Path().SignedArea() }

func (pl Polyline) Perimeter() float64 { return pl.Path().Perimeter() }

func (pl Polyline) BoundingBox() Rect { return pl.Path().BoundingBox() }

func (pl Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(pl))
	for i, pt := range pl {
		out[i] = pt.Transform(aff)
	}
	return out
}

func distinctPoints(pts []Point) int {
	s := slices.Clone(pts)
	slices.SortFunc(s, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	return len(slices.Compact(s))
}
