package patchwork

import (
	"image/color"
	"math"
)

// Canvas is a drawing surface that builds and strokes paths.
type Canvas interface {
	BeginPath()
	MoveTo(p Point)
	LineTo(p Point)
	Stroke(style StrokeStyle)
}

// StrokeStyle describes how a path is stroked. Width is in drawing units,
// which are centimetres for a composition.
type StrokeStyle struct {
	Color color.Color
	Width float64
}

var (
	// DefaultStroke is a thin black pen.
	DefaultStroke = StrokeStyle{Color: color.Black, Width: 0.03}
	// DebugStroke strokes patches while the point overlay is shown.
	DebugStroke = StrokeStyle{Color: color.RGBA{0, 0, 0xff, 0xff}, Width: 0.03}
	// DebugPointStroke outlines the remaining points of the cloud.
	DebugPointStroke = StrokeStyle{Color: color.RGBA{0xff, 0, 0, 0xff}, Width: 0.03}
)

// DebugPointRadius is the radius of the circles marking remaining points.
const DebugPointRadius = 0.2

// DrawPolylines strokes each polyline as its own path, in order. Every
// polyline is closed, so each path returns to its first point.
func DrawPolylines(cv Canvas, lines []Polyline, style StrokeStyle) {
	for _, pl := range lines {
		if len(pl) == 0 {
			continue
		}
		cv.BeginPath()
		cv.MoveTo(pl[0])
		for _, p := range pl[1:] {
			cv.LineTo(p)
		}
		cv.Stroke(style)
	}
}

// DrawPoints outlines a circle of radius r around each point. Circles are
// approximated by regular polygons so that any Canvas can draw them.
func DrawPoints(cv Canvas, pts []Point, r float64, style StrokeStyle) {
	const sides = 16
	var unit [sides]Vec2
	for i := range unit {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / sides)
		unit[i] = Vec2{cos * r, sin * r}
	}
	for _, p := range pts {
		cv.BeginPath()
		cv.MoveTo(p.Translate(unit[0]))
		for _, v := range unit[1:] {
			cv.LineTo(p.Translate(v))
		}
		cv.LineTo(p.Translate(unit[0]))
		cv.Stroke(style)
	}
}
