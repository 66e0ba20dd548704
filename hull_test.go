package patchwork

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestConvexHull(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []int
	}{
		{
			"square with interior point",
			pts(0, 0, 10, 0, 10, 10, 0, 10, 5, 5),
			[]int{0, 1, 2, 3},
		},
		{
			"collinear boundary point",
			pts(0, 0, 5, 0, 10, 0, 10, 10, 0, 10),
			[]int{0, 2, 3, 4},
		},
		{
			"triangle",
			pts(2, 2, 0, 0, 4, 0),
			[]int{1, 2, 0},
		},
		{
			"duplicates",
			pts(0, 0, 0, 0, 4, 0, 0, 4, 4, 0),
			[]int{0, 2, 3},
		},
		{
			"collinear",
			pts(0, 0, 1, 1, 2, 2, 3, 3),
			[]int{0, 3},
		},
		{
			"two points",
			pts(0, 0, 1, 1),
			[]int{0, 1},
		},
		{
			"one point",
			pts(1, 1),
			[]int{0},
		},
		{
			"all equal",
			pts(1, 1, 1, 1, 1, 1),
			[]int{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, ConvexHull(tt.points))
		})
	}
	if got := ConvexHull(nil); len(got) != 0 {
		t.Errorf("got %v for no points", got)
	}
}

func TestConvexHullContainsAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	points := make([]Point, 200)
	for i := range points {
		points[i] = Pt(rng.Float64()*10, rng.Float64()*10)
	}
	hull := MonotoneChain{}.Hull(points)
	if len(hull) < 3 {
		t.Fatalf("got hull %v", hull)
	}
	// Every point lies on the inner side of, or on, every edge, and every
	// turn is strictly convex.
	for i := range hull {
		a, b := points[hull[i]], points[hull[(i+1)%len(hull)]]
		c := points[hull[(i+2)%len(hull)]]
		if cross3(a, b, c) <= 0 {
			t.Errorf("hull not strictly convex at vertex %d", hull[(i+1)%len(hull)])
		}
		for j, p := range points {
			if cross3(a, b, p) < -1e-12 {
				t.Fatalf("point %d at %v lies outside edge %v-%v", j, p, a, b)
			}
		}
	}
	sorted := slices.Clone(hull)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(hull) {
		t.Errorf("hull %v repeats an index", hull)
	}
}
