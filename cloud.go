package patchwork

import (
	"iter"
	"math"
	"math/rand/v2"
)

// PointID identifies a point of a [PointCloud]. IDs are stable for the
// lifetime of the cloud and are never reused, so two points with equal
// coordinates are still distinct.
type PointID int

// PointCloud is the working set of points that patches are carved from. It
// only ever shrinks.
//
// Points live in an arena indexed by [PointID]; removal flips a liveness bit
// and compacts the ordered list of live IDs, so removing a whole cluster costs
// one pass over the cloud rather than one pass per removed point.
//
// A PointCloud is not safe for concurrent use.
type PointCloud struct {
	arena []Point
	alive []bool
	live  []PointID
}

// NewPointCloud returns a cloud holding copies of pts, in order. The i-th
// point gets PointID i.
func NewPointCloud(pts []Point) *PointCloud {
	c := &PointCloud{
		arena: append([]Point(nil), pts...),
		alive: make([]bool, len(pts)),
		live:  make([]PointID, len(pts)),
	}
	for i := range pts {
		c.alive[i] = true
		c.live[i] = PointID(i)
	}
	return c
}

// NewRandomCloud samples count points independently and uniformly from bounds
// inset by margin on every side.
//
// It returns a [*ConfigError] if the sampling area is empty or inverted, if
// count is not positive, or if bounds or margin are not finite.
func NewRandomCloud(count int, bounds Rect, margin float64, rng *rand.Rand) (*PointCloud, error) {
	if count <= 0 {
		return nil, &ConfigError{"point count", count, "must be positive"}
	}
	if bounds.IsNaN() || bounds.IsInf() {
		return nil, &ConfigError{"bounds", bounds, "must be finite"}
	}
	if math.IsNaN(margin) || math.IsInf(margin, 0) || margin < 0 {
		return nil, &ConfigError{"margin", margin, "must be non-negative and finite"}
	}
	area := bounds.Inset(margin)
	if area.IsEmpty() {
		return nil, &ConfigError{"margin", margin, "leaves no area to sample points in"}
	}
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{
			X: area.X0 + rng.Float64()*area.Width(),
			Y: area.Y0 + rng.Float64()*area.Height(),
		}
	}
	return NewPointCloud(pts), nil
}

// Len returns the number of points still in the cloud.
func (c *PointCloud) Len() int { return len(c.live) }

// Initial returns the number of points the cloud was created with.
func (c *PointCloud) Initial() int { return len(c.arena) }

// Contains reports whether id names a point that is still in the cloud.
func (c *PointCloud) Contains(id PointID) bool {
	return id >= 0 && int(id) < len(c.alive) && c.alive[id]
}

// At returns the position of the point with the given ID. Removed points keep
// their position.
func (c *PointCloud) At(id PointID) Point { return c.arena[id] }

// IDs returns the IDs of the points still in the cloud, in creation order.
// The slice must not be modified and is invalidated by the next call to
// [PointCloud.Remove].
func (c *PointCloud) IDs() []PointID { return c.live }

// Points returns the positions of the points still in the cloud, in the same
// order as [PointCloud.IDs].
func (c *PointCloud) Points() []Point {
	out := make([]Point, len(c.live))
	for i, id := range c.live {
		out[i] = c.arena[id]
	}
	return out
}

// All returns an iterator over the live points and their IDs.
func (c *PointCloud) All() iter.Seq2[PointID, Point] {
	return func(yield func(PointID, Point) bool) {
		for _, id := range c.live {
			if !yield(id, c.arena[id]) {
				return
			}
		}
	}
}

// Remove removes the points with the given IDs from the cloud and returns
// how many were removed. IDs that are out of range, already removed or
// repeated are ignored.
func (c *PointCloud) Remove(ids ...PointID) int {
	n := 0
	for _, id := range ids {
		if c.Contains(id) {
			c.alive[id] = false
			n++
		}
	}
	if n == 0 {
		return 0
	}
	c.live = compactLive(c.live, c.alive)
	return n
}

func compactLive(live []PointID, alive []bool) []PointID {
	out := live[:0]
	for _, id := range live {
		if alive[id] {
			out = append(out, id)
		}
	}
	return out
}
