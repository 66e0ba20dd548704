package patchwork

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeans is the default [ClusteringOracle]. It runs Lloyd's algorithm with
// randomly chosen initial centers, so its output differs between calls.
type KMeans struct {
	// DeltaThreshold stops iterating once fewer than this fraction of points
	// change clusters in an iteration. Zero uses the library default of 0.01.
	DeltaThreshold float64
}

// observation is a point that remembers where it came from, so that clusters
// can be mapped back to indices.
type observation struct {
	coords clusters.Coordinates
	index  int
}

func (o observation) Coordinates() clusters.Coordinates { return o.coords }

func (o observation) Distance(c clusters.Coordinates) float64 { return o.coords.Distance(c) }

// Cluster implements [ClusteringOracle]. It returns no groups if k is not
// positive or exceeds the number of points.
func (km KMeans) Cluster(points []Point, k int) [][]int {
	if k <= 0 || k > len(points) {
		return nil
	}
	m := kmeans.New()
	if km.DeltaThreshold > 0 {
		var err error
		m, err = kmeans.NewWithOptions(km.DeltaThreshold, nil)
		if err != nil {
			return nil
		}
	}

	obs := make(clusters.Observations, len(points))
	for i, pt := range points {
		obs[i] = observation{coords: clusters.Coordinates{pt.X, pt.Y}, index: i}
	}
	cc, err := m.Partition(obs, k)
	if err != nil {
		return nil
	}

	groups := make([][]int, 0, len(cc))
	for _, c := range cc {
		g := make([]int, 0, len(c.Observations))
		for _, o := range c.Observations {
			if o, ok := o.(observation); ok {
				g = append(g, o.index)
			}
		}
		groups = append(groups, g)
	}
	// The library may leave a point in two clusters when it stops right after
	// reseeding an empty one.
	return normalizeGroups(groups, len(points))
}
