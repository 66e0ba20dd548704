package patchwork

// ClusteringOracle partitions points into at most k groups.
//
// Each group is a non-empty list of indices into points. Neither the order of
// groups nor the order of indices within a group carries meaning, and two
// calls with the same input may return different partitions.
type ClusteringOracle interface {
	Cluster(points []Point, k int) [][]int
}

// ClusterFunc adapts an ordinary function to a [ClusteringOracle].
type ClusterFunc func(points []Point, k int) [][]int

func (fn ClusterFunc) Cluster(points []Point, k int) [][]int { return fn(points, k) }

// HullOracle computes the boundary of a point set.
//
// The result lists indices into points naming the boundary vertices in a
// consistent winding order. Degenerate input, such as fewer than three
// points or collinear points, may yield fewer than three indices.
type HullOracle interface {
	Hull(points []Point) []int
}

// HullFunc adapts an ordinary function to a [HullOracle].
type HullFunc func(points []Point) []int

func (fn HullFunc) Hull(points []Point) []int { return fn(points) }

// normalizeGroups turns the output of a clustering oracle into a partition of
// [0, n): indices outside the range are dropped, an index claimed by an
// earlier group is dropped from later ones, and groups left empty are
// removed. Group order is preserved, which matters for tie-breaking.
func normalizeGroups(groups [][]int, n int) [][]int {
	seen := make([]bool, n)
	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		var kept []int
		for _, idx := range g {
			if idx < 0 || idx >= n || seen[idx] {
				continue
			}
			seen[idx] = true
			kept = append(kept, idx)
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
