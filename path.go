package patchwork

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a [Path]. Patches are straight-edged
// polygons, so lines are the only segments.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of path elements. Each subpath begins with a MoveTo,
// followed by zero or more LineTo elements, and optionally ends with a
// ClosePath.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied.
func (p Path) Transform(aff Affine) Path {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Lines returns an iterator over the path's line segments, including the
// implicit segments added by ClosePath.
func (p Path) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var start, last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start, last = el.P0, el.P0
			case LineToKind:
				if !yield(Line{last, el.P0}) {
					return
				}
				last = el.P0
			case ClosePathKind:
				if last != start {
					if !yield(Line{last, start}) {
						return
					}
				}
				last = start
			}
		}
	}
}

// SignedArea returns the signed area enclosed by the path's subpaths, treating
// open subpaths as if they were closed.
//
// The area is positive when the path winds clockwise in a y-down frame.
func (p Path) SignedArea() float64 {
	var area float64
	var start, last Point
	open := false
	closeSub := func() {
		if open {
			area += Line{last, start}.signedArea()
		}
		open = false
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSub()
			start, last = el.P0, el.P0
			open = true
		case LineToKind:
			area += Line{last, el.P0}.signedArea()
			last = el.P0
		case ClosePathKind:
			closeSub()
			last = start
		}
	}
	closeSub()
	return area
}

// Perimeter returns the total length of the path's segments.
func (p Path) Perimeter() float64 {
	var total float64
	for l := range p.Lines() {
		total += l.Length()
	}
	return total
}

// BoundingBox returns the smallest rectangle that encloses every point of the
// path. The zero Rect is returned for paths without points.
func (p Path) BoundingBox() Rect {
	first := true
	var bbox Rect
	for _, el := range p {
		if el.Kind == ClosePathKind {
			continue
		}
		if first {
			first = false
			bbox = NewRectFromPoints(el.P0, el.P0)
		} else {
			bbox = bbox.UnionPoint(el.P0)
		}
	}
	return bbox
}

// SVG converts the path to a string of SVG path commands.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", FormatCoord(el.P0.X, opts.MaxPrecision), FormatCoord(el.P0.Y, opts.MaxPrecision))
		case LineToKind:
			writef("L%s,%s", FormatCoord(el.P0.X, opts.MaxPrecision), FormatCoord(el.P0.Y, opts.MaxPrecision))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

// FormatCoord formats n with at most maxPrec digits after the decimal point,
// trimming trailing zeros. A maxPrec of 0 or less uses the shortest
// representation that round-trips.
func FormatCoord(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
