package patchwork

import "fmt"

// Outcome describes what a single tick did.
type Outcome int

const (
	// Extracted means a patch was appended and its cluster removed from the
	// cloud.
	Extracted Outcome = iota + 1
	// Exhausted means the cloud holds no more points than the cluster count.
	// The cloud never grows, so every later tick is exhausted too.
	Exhausted
	// NoQualifyingCluster means every group had fewer than
	// [MinClusterSize] points. A later tick may cluster differently.
	NoQualifyingCluster
	// DegenerateHull means the selected group's hull had fewer than three
	// distinct vertices. Its points stay in the cloud.
	DegenerateHull
)

func (o Outcome) String() string {
	switch o {
	case Extracted:
		return "extracted"
	case Exhausted:
		return "exhausted"
	case NoQualifyingCluster:
		return "no qualifying cluster"
	case DegenerateHull:
		return "degenerate hull"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the result of one tick.
type Result struct {
	Outcome Outcome
	// Patch is the appended polyline if Outcome is Extracted.
	Patch Polyline
	// Consumed is the number of points removed from the cloud.
	Consumed int
	// Remaining is the size of the cloud after the tick.
	Remaining int
}

// Extractor carves one patch out of a point cloud per tick.
//
// An Extractor is not safe for concurrent use; [Composition] serializes
// ticks.
type Extractor struct {
	Cloud     *PointCloud
	Lines     *Accumulator
	Clusterer ClusteringOracle
	Hull      HullOracle
	// ClusterCount is k, the number of groups requested per tick.
	ClusterCount int
}

// Tick runs one iteration: cluster the whole remaining cloud, select the
// sparsest group, outline it with its convex hull, append the outline and
// remove every member of the group from the cloud.
//
// Nothing is modified unless the outcome is [Extracted]. Tick never panics
// on oracle output: bad indices are dropped, and any shortfall ends the tick
// with a non-Extracted outcome.
func (e *Extractor) Tick() Result {
	n := e.Cloud.Len()
	if n <= e.ClusterCount {
		return Result{Outcome: Exhausted, Remaining: n}
	}

	ids := e.Cloud.IDs()
	pts := e.Cloud.Points()
	groups := normalizeGroups(e.Clusterer.Cluster(pts, e.ClusterCount), n)
	sel, ok := SelectCluster(groups)
	if !ok {
		return Result{Outcome: NoQualifyingCluster, Remaining: n}
	}
	group := groups[sel]

	positions := make([]Point, len(group))
	for i, idx := range group {
		positions[i] = pts[idx]
	}
	vertices := hullVertices(positions, e.Hull.Hull(positions))
	if distinctPoints(vertices) < 3 {
		return Result{Outcome: DegenerateHull, Remaining: n}
	}

	patch := ClosePolyline(vertices)
	e.Lines.Append(patch)

	members := make([]PointID, len(group))
	for i, idx := range group {
		members[i] = ids[idx]
	}
	consumed := e.Cloud.Remove(members...)
	return Result{
		Outcome:   Extracted,
		Patch:     patch,
		Consumed:  consumed,
		Remaining: e.Cloud.Len(),
	}
}

// hullVertices maps hull indices to positions, skipping indices that are out
// of range or repeat an earlier vertex.
func hullVertices(positions []Point, hull []int) []Point {
	seen := make(map[int]bool, len(hull))
	out := make([]Point, 0, len(hull))
	for _, idx := range hull {
		if idx < 0 || idx >= len(positions) || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, positions[idx])
	}
	return out
}
