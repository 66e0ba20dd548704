package patchwork

import (
	"slices"
	"testing"
)

func TestClosePolyline(t *testing.T) {
	pl := ClosePolyline(pts(0, 0, 4, 0, 0, 3))
	diff(t, Polyline(pts(0, 0, 4, 0, 0, 3, 0, 0)), pl)
	if !pl.Closed() || !pl.Valid() {
		t.Errorf("%v should be closed and valid", pl)
	}
	diff(t, pts(0, 0, 4, 0, 0, 3), pl.Vertices())
	if got := pl.Perimeter(); got != 12 {
		t.Errorf("got perimeter %v, want 12", got)
	}
	if got := pl.Area(); got != 6 {
		t.Errorf("got area %v, want 6", got)
	}
	diff(t, Rect{0, 0, 4, 3}, pl.BoundingBox())
	diff(t, "M0,0 L4,0 L0,3 Z", pl.Path().SVG(SVGOptions{}))

	if ClosePolyline(nil) != nil {
		t.Error("closing no vertices should yield nil")
	}
}

func TestPolylineValid(t *testing.T) {
	tests := []struct {
		name string
		pl   Polyline
		want bool
	}{
		{"triangle", ClosePolyline(pts(0, 0, 1, 0, 0, 1)), true},
		{"open", Polyline(pts(0, 0, 1, 0, 0, 1)), false},
		{"two vertices", ClosePolyline(pts(0, 0, 1, 0)), false},
		{"repeated vertex", ClosePolyline(pts(0, 0, 1, 0, 1, 0)), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pl.Valid(); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestPolylineSegments(t *testing.T) {
	pl := ClosePolyline(pts(0, 0, 1, 0, 0, 1))
	got := slices.Collect(pl.Segments())
	want := []Line{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(0, 1)},
		{Pt(0, 1), Pt(0, 0)},
	}
	diff(t, want, got)
}

func TestPolylineTransform(t *testing.T) {
	pl := ClosePolyline(pts(0, 0, 1, 0, 0, 1))
	got := pl.Transform(Translate(Vec(1, 2)))
	diff(t, ClosePolyline(pts(1, 2, 2, 2, 1, 3)), got)
	// The original is left alone.
	diff(t, ClosePolyline(pts(0, 0, 1, 0, 0, 1)), pl)
}
