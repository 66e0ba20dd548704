// Package raster renders compositions to images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/patchwork"
)

// Canvas strokes paths onto an RGBA image. It implements [patchwork.Canvas].
//
// Strokes are rasterized as one quadrilateral per segment plus a square at
// every vertex.
type Canvas struct {
	dst *image.RGBA
	aff patchwork.Affine
	z   *vector.Rasterizer

	cur   patchwork.Point
	lines []patchwork.Line
	quads [][4]patchwork.Point
}

var _ patchwork.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas drawing onto dst. Points passed to the canvas
// are transformed by aff, which maps drawing space to pixels.
func NewCanvas(dst *image.RGBA, aff patchwork.Affine) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		dst: dst,
		aff: aff,
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

func (cv *Canvas) BeginPath() { cv.lines = cv.lines[:0] }

func (cv *Canvas) MoveTo(p patchwork.Point) { cv.cur = p.Transform(cv.aff) }

func (cv *Canvas) LineTo(p patchwork.Point) {
	p = p.Transform(cv.aff)
	cv.lines = append(cv.lines, patchwork.Line{P0: cv.cur, P1: p})
	cv.cur = p
}

// Stroke draws the current path. Widths are scaled by the canvas transform
// and never drop below one pixel.
func (cv *Canvas) Stroke(style patchwork.StrokeStyle) {
	if len(cv.lines) == 0 || style.Color == nil {
		return
	}
	w := max(1, style.Width*cv.aff.ScaleFactor())

	// A horizontal segment of length w outlined with width w is a square
	// wound the same way as the segment outlines. One is placed on every
	// vertex to fill the joins.
	half := patchwork.Vec(w/2, 0)
	join := func(p patchwork.Point) [4]patchwork.Point {
		return patchwork.Line{P0: p.Translate(half.Negate()), P1: p.Translate(half)}.Outline(w)
	}
	cv.quads = append(cv.quads[:0], join(cv.lines[0].P0))
	for _, l := range cv.lines {
		cv.quads = append(cv.quads, l.Outline(w), join(l.P1))
	}

	// Only rasterize the area the stroke covers.
	bbox := patchwork.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	for _, q := range cv.quads {
		for _, p := range q {
			bbox = bbox.UnionPoint(p)
		}
	}
	r := image.Rect(
		int(math.Floor(bbox.X0)), int(math.Floor(bbox.Y0)),
		int(math.Ceil(bbox.X1)), int(math.Ceil(bbox.Y1)),
	).Intersect(cv.dst.Bounds())
	if r.Empty() {
		return
	}

	cv.z.Reset(r.Dx(), r.Dy())
	cv.z.DrawOp = draw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, q := range cv.quads {
		cv.z.MoveTo(float32(q[0].X-ox), float32(q[0].Y-oy))
		for _, p := range q[1:] {
			cv.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		cv.z.ClosePath()
	}
	cv.z.Draw(cv.dst, r, image.NewUniform(style.Color), image.Point{})
}

// Options control [Render] and [EncodePNG].
type Options struct {
	// PixelsPerCM is the resolution. Zero means [DefaultPixelsPerCM].
	PixelsPerCM float64
	// Background fills the image before drawing. Nil means white.
	Background color.Color
	// Stroke is the pen used for patches. The zero value uses
	// [patchwork.DefaultStroke].
	Stroke patchwork.StrokeStyle
	// Debug, if not empty, marks each of these points with a circle.
	Debug []patchwork.Point
}

// DefaultPixelsPerCM is roughly 100 DPI.
const DefaultPixelsPerCM = 40

// Bounds returns the pixel bounds of paper at the given resolution.
func Bounds(paper patchwork.Size, pixelsPerCM float64) image.Rectangle {
	return image.Rect(0, 0,
		int(math.Ceil(paper.Width*pixelsPerCM)),
		int(math.Ceil(paper.Height*pixelsPerCM)))
}

func (opts *Options) defaults() {
	if opts.PixelsPerCM <= 0 {
		opts.PixelsPerCM = DefaultPixelsPerCM
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Stroke.Color == nil {
		opts.Stroke = patchwork.DefaultStroke
	}
}

// Render draws lines on paper of the given size.
func Render(lines []patchwork.Polyline, paper patchwork.Size, opts Options) *image.RGBA {
	opts.defaults()
	img := image.NewRGBA(Bounds(paper, opts.PixelsPerCM))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	cv := NewCanvas(img, patchwork.Scale(opts.PixelsPerCM, opts.PixelsPerCM))
	stroke := opts.Stroke
	if len(opts.Debug) > 0 {
		stroke.Color = patchwork.DebugStroke.Color
	}
	patchwork.DrawPolylines(cv, lines, stroke)
	if len(opts.Debug) > 0 {
		patchwork.DrawPoints(cv, opts.Debug, patchwork.DebugPointRadius, patchwork.DebugPointStroke)
	}
	return img
}

// EncodePNG renders lines and writes the result to w as a PNG image.
func EncodePNG(w io.Writer, lines []patchwork.Polyline, paper patchwork.Size, opts Options) error {
	if err := png.Encode(w, Render(lines, paper, opts)); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}
