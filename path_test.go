package patchwork

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"
)

func square() Path {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.LineTo(Pt(0, 10))
	p.ClosePath()
	return p
}

func TestPathSVG(t *testing.T) {
	want := "M0,0 L10,0 L10,10 L0,10 Z"
	got := square().SVG(SVGOptions{})
	diff(t, got, want)
}

func TestPathSVGPrecision(t *testing.T) {
	var p Path
	p.MoveTo(Pt(1.23456, -0.0001))
	p.LineTo(Pt(2.5, 3))
	want := "M1.235,0 L2.5,3"
	got := p.SVG(SVGOptions{MaxPrecision: 3})
	diff(t, got, want)
}

type brokenWriter struct{}

var errBroken = errors.New("broken")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriteSVGError(t *testing.T) {
	if err := square().WriteSVG(brokenWriter{}, SVGOptions{}); !errors.Is(err, errBroken) {
		t.Errorf("got %v, want %v", err, errBroken)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, square().Elements(), SVGOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestPathLines(t *testing.T) {
	got := slices.Collect(square().Lines())
	want := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
		{Pt(10, 10), Pt(0, 10)},
		{Pt(0, 10), Pt(0, 0)},
	}
	diff(t, want, got)
}

func TestPathMeasures(t *testing.T) {
	p := square()
	if a := p.SignedArea(); a != 100 {
		t.Errorf("got area %v, want 100", a)
	}
	if l := p.Perimeter(); l != 40 {
		t.Errorf("got perimeter %v, want 40", l)
	}
	diff(t, Rect{0, 0, 10, 10}, p.BoundingBox())

	// An open subpath is measured as if closed.
	open := p[:len(p)-1]
	if a := open.SignedArea(); a != 100 {
		t.Errorf("got area %v for open path, want 100", a)
	}

	reversed := Path{MoveTo(Pt(0, 0)), LineTo(Pt(0, 10)), LineTo(Pt(10, 10)), LineTo(Pt(10, 0)), ClosePath()}
	if a := reversed.SignedArea(); a != -100 {
		t.Errorf("got area %v for reversed path, want -100", a)
	}
}

func TestPathTransform(t *testing.T) {
	got := square().Transform(Scale(2, 0.5))
	if a := got.SignedArea(); math.Abs(a-100) > 1e-9 {
		t.Errorf("got area %v, want 100", a)
	}
	diff(t, Rect{0, 0, 20, 5}, got.BoundingBox())
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		n    float64
		prec int
		want string
	}{
		{1, 0, "1"},
		{0.1, 0, "0.1"},
		{1.5, 3, "1.5"},
		{2.0004, 3, "2"},
		{-0.0001, 2, "0"},
		{-1.26, 1, "-1.3"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.n, tt.prec); got != tt.want {
			t.Errorf("FormatCoord(%v, %d) = %q, want %q", tt.n, tt.prec, got, tt.want)
		}
	}
}
