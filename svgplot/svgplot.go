// Package svgplot writes compositions as SVG documents for pen plotters.
//
// Documents use centimetres as user units: the viewBox spans the paper, and
// the width and height attributes carry the physical size, so that plotter
// software reproduces the drawing at scale.
package svgplot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jbeda/geom"

	"honnef.co/go/patchwork"
)

// Options control the output of [Encode].
type Options struct {
	// Stroke is the pen used for patches. The zero value uses
	// [patchwork.DefaultStroke].
	Stroke patchwork.StrokeStyle
	// Debug, if not empty, marks each of these points with a red circle.
	// Compositions pass the points remaining in their cloud.
	Debug []patchwork.Point
	// Signature, if not empty, is encoded as a QR code drawn in the bottom
	// right corner of the paper.
	Signature string
	// SignatureSize is the side length of the QR code in centimetres. Zero
	// means 1.5.
	SignatureSize float64
	// Precision is the maximum number of digits after the decimal point in
	// coordinates. Zero or less means as many as needed.
	Precision int
}

// Encode writes lines as an SVG document for paper of the given size. Each
// polyline becomes one closed path, in order.
func Encode(w io.Writer, lines []patchwork.Polyline, size patchwork.Size, opts Options) error {
	if opts.Stroke.Color == nil {
		opts.Stroke = patchwork.DefaultStroke
	}

	var sig []patchwork.Polyline
	if opts.Signature != "" {
		var err error
		sig, err = QRCode(opts.Signature, SignatureArea(size, opts.SignatureSize))
		if err != nil {
			return err
		}
	}

	doc := newWriter(w, opts.Precision)
	doc.start(geom.Rect{Max: geom.Coord{X: size.Width, Y: size.Height}}, size)

	doc.startGroup("patches")
	patchwork.DrawPolylines(doc, lines, opts.Stroke)
	doc.endGroup()

	if len(sig) > 0 {
		doc.startGroup("signature")
		patchwork.DrawPolylines(doc, sig, opts.Stroke)
		doc.endGroup()
	}

	if len(opts.Debug) > 0 {
		doc.startGroup("debug")
		style := strokeAttr(patchwork.DebugPointStroke, opts.Precision)
		for _, p := range opts.Debug {
			doc.circle(coord(p), patchwork.DebugPointRadius, style)
		}
		doc.endGroup()
	}

	doc.end()
	if doc.err != nil {
		return fmt.Errorf("svgplot: %w", doc.err)
	}
	return nil
}

// SignatureArea returns the square in the bottom right corner of the paper
// that a signature of the given side length is drawn into. A side of zero
// means 1.5 cm.
func SignatureArea(paper patchwork.Size, side float64) patchwork.Rect {
	if side <= 0 {
		side = 1.5
	}
	pad := side / 4
	return patchwork.Rect{
		X0: paper.Width - pad - side,
		Y0: paper.Height - pad - side,
		X1: paper.Width - pad,
		Y1: paper.Height - pad,
	}
}

func coord(p patchwork.Point) geom.Coord { return geom.Coord{X: p.X, Y: p.Y} }

func strokeAttr(style patchwork.StrokeStyle, prec int) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s",
		hexColor(style.Color), patchwork.FormatCoord(style.Width, prec))
}

func hexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
