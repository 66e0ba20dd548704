package patchwork

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func pts(coords ...float64) []Point {
	if len(coords)%2 != 0 {
		panic("odd number of coordinates")
	}
	out := make([]Point, len(coords)/2)
	for i := range out {
		out[i] = Pt(coords[2*i], coords[2*i+1])
	}
	return out
}
