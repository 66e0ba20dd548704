package svgplot

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"honnef.co/go/patchwork"
)

// writer serializes SVG elements. It implements [patchwork.Canvas]: a stroked
// path becomes one path element, and a path that returns to its first point
// is closed with Z.
//
// The first write error is kept in err and all later writes are skipped.
type writer struct {
	w    io.Writer
	prec int
	err  error

	path patchwork.Path
}

var _ patchwork.Canvas = (*writer)(nil)

func newWriter(w io.Writer, prec int) *writer {
	return &writer{w: w, prec: prec}
}

func (doc *writer) printf(format string, args ...any) {
	if doc.err != nil {
		return
	}
	_, doc.err = fmt.Fprintf(doc.w, format, args...)
}

func (doc *writer) num(f float64) string { return patchwork.FormatCoord(f, doc.prec) }

func (doc *writer) start(viewBox geom.Rect, paper patchwork.Size) {
	doc.printf(`<?xml version="1.0" standalone="no"?>
<svg version="1.1"
     width="%scm" height="%scm"
     viewBox="%s %s %s %s"
     xmlns="http://www.w3.org/2000/svg">
`, doc.num(paper.Width), doc.num(paper.Height),
		doc.num(viewBox.Min.X), doc.num(viewBox.Min.Y), doc.num(viewBox.Width()), doc.num(viewBox.Height()))
}

func (doc *writer) end() {
	doc.printf("</svg>\n")
}

func (doc *writer) startGroup(id string) {
	doc.printf("<g id='%s'>\n", id)
}

func (doc *writer) endGroup() {
	doc.printf("</g>\n")
}

func (doc *writer) circle(c geom.Coord, r float64, style string) {
	doc.printf("<circle cx='%s' cy='%s' r='%s' style='%s'/>\n", doc.num(c.X), doc.num(c.Y), doc.num(r), style)
}

func (doc *writer) BeginPath() { doc.path = doc.path[:0] }

func (doc *writer) MoveTo(p patchwork.Point) { doc.path.MoveTo(p) }

func (doc *writer) LineTo(p patchwork.Point) {
	if len(doc.path) == 0 {
		doc.path.MoveTo(p)
		return
	}
	doc.path.LineTo(p)
}

func (doc *writer) Stroke(style patchwork.StrokeStyle) {
	if len(doc.path) < 2 {
		return
	}
	// A final segment back to the start becomes Z.
	first, last := doc.path[0], doc.path[len(doc.path)-1]
	if len(doc.path) > 2 && last.Kind == patchwork.LineToKind && last.P0 == first.P0 {
		doc.path[len(doc.path)-1] = patchwork.ClosePath()
	}
	doc.printf("<path style='%s' d='", strokeAttr(style, doc.prec))
	if doc.err == nil {
		doc.err = patchwork.WriteSVG(doc.w, doc.path.Elements(), patchwork.SVGOptions{MaxPrecision: doc.prec})
	}
	doc.printf("'/>\n")
}
