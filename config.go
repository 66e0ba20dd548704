package patchwork

import (
	"math"
	"time"
)

// MinClusterSize is the smallest group that can be turned into a patch. A
// convex hull needs at least three points to enclose any area.
const MinClusterSize = 3

// Config holds the startup-time settings of a composition. It is not meant to
// be changed once a composition has been created from it.
type Config struct {
	// Paper is the drawable area in centimetres.
	Paper Size
	// PointCount is the number of points the cloud starts with. More points
	// produce more defined patches.
	PointCount int
	// ClusterCount is k, the number of groups requested from the clustering
	// oracle on every tick. Lower values produce bigger patches.
	ClusterCount int
	// Margin insets the sampling area from every edge of the paper.
	Margin float64
	// TickPeriod is the time between two ticks of a [Scheduler].
	TickPeriod time.Duration
	// Seed seeds point sampling. Zero picks a seed from the clock; the seed
	// actually used is reported by [Composition.Config].
	Seed uint64
}

// DefaultConfig returns a square poster with 50 000 points, three clusters per
// tick, a 2 cm margin and 30 ticks per second.
func DefaultConfig() Config {
	return Config{
		Paper:        SquarePoster.Landscape(),
		PointCount:   50000,
		ClusterCount: 3,
		Margin:       2,
		TickPeriod:   time.Second / 30,
	}
}

// Validate reports the first problem with the configuration as a
// [*ConfigError].
func (cfg Config) Validate() error {
	w, h := cfg.Paper.Width, cfg.Paper.Height
	switch {
	case cfg.Paper.IsNaN() || cfg.Paper.IsInf() || w <= 0 || h <= 0:
		return &ConfigError{"paper size", cfg.Paper, "width and height must be positive and finite"}
	case cfg.PointCount <= 0:
		return &ConfigError{"point count", cfg.PointCount, "must be positive"}
	case cfg.ClusterCount < 1:
		return &ConfigError{"cluster count", cfg.ClusterCount, "must be at least 1"}
	case math.IsNaN(cfg.Margin) || math.IsInf(cfg.Margin, 0) || cfg.Margin < 0:
		return &ConfigError{"margin", cfg.Margin, "must be non-negative and finite"}
	case 2*cfg.Margin >= w || 2*cfg.Margin >= h:
		return &ConfigError{"margin", cfg.Margin, "leaves no area to sample points in on " + cfg.Paper.String()}
	case cfg.TickPeriod <= 0:
		return &ConfigError{"tick period", cfg.TickPeriod, "must be positive"}
	}
	return nil
}
