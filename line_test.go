package patchwork

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
}

func TestLineOutline(t *testing.T) {
	const epsilon = 1e-9
	q := Line{Pt(0, 0), Pt(4, 0)}.Outline(2)
	want := [4]Point{Pt(0, 1), Pt(4, 1), Pt(4, -1), Pt(0, -1)}
	for i := range q {
		assertNear(t, q[i], want[i], epsilon)
	}

	// Outlines of segments pointing in different directions wind the same
	// way.
	area := func(q [4]Point) float64 {
		var p Path
		p.MoveTo(q[0])
		for _, v := range q[1:] {
			p.LineTo(v)
		}
		p.ClosePath()
		return p.SignedArea()
	}
	a0 := area(Line{Pt(0, 0), Pt(4, 0)}.Outline(2))
	a1 := area(Line{Pt(4, 0), Pt(0, 3)}.Outline(2))
	if math.Signbit(a0) != math.Signbit(a1) {
		t.Errorf("outlines wind differently: %v and %v", a0, a1)
	}

	degenerate := Line{Pt(1, 1), Pt(1, 1)}.Outline(2)
	for _, p := range degenerate {
		if p != Pt(1, 1) {
			t.Errorf("zero-length line produced %v", degenerate)
		}
	}
}
