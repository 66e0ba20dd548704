package patchwork

import (
	"cmp"
	"slices"
)

// MonotoneChain is the default [HullOracle]. It computes convex hulls with
// Andrew's monotone chain algorithm in O(n log n).
//
// Collinear boundary points and duplicates are not part of the result. The
// vertices are listed counter-clockwise in a y-up frame, which is clockwise
// on a y-down page. Fewer than three points, or points that all lie on one
// line, yield at most two indices.
type MonotoneChain struct{}

// Hull implements [HullOracle].
func (MonotoneChain) Hull(points []Point) []int {
	return ConvexHull(points)
}

// ConvexHull returns the indices of the convex hull of points. See
// [MonotoneChain] for the properties of the result.
func ConvexHull(points []Point) []int {
	n := len(points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := points[a], points[b]
		if c := cmp.Compare(pa.X, pb.X); c != 0 {
			return c
		}
		return cmp.Compare(pa.Y, pb.Y)
	})
	order = slices.CompactFunc(order, func(a, b int) bool {
		return points[a] == points[b]
	})
	if len(order) < 3 {
		return order
	}

	// chain builds one half of the hull into hull, starting at base, popping
	// vertices that do not make a strict left turn.
	chain := func(hull []int, base int, seq []int) []int {
		for _, idx := range seq {
			for len(hull) >= base+2 && cross3(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[idx]) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, idx)
		}
		return hull
	}

	hull := make([]int, 0, 2*len(order))
	hull = chain(hull, 0, order)
	lower := len(hull)
	rev := slices.Clone(order)
	slices.Reverse(rev)
	// The last point of the lower chain is the first of the upper chain.
	hull = chain(hull, lower-1, rev[1:])
	// The upper chain ends where the lower one started.
	hull = hull[:len(hull)-1]
	// For collinear input both chains collapse onto the two extremes, leaving
	// a degenerate two-vertex hull.
	return hull
}
