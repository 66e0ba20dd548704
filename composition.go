package patchwork

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Composition is one piece of line art in progress. It owns the point cloud,
// the accumulated patches and the extractor that connects them.
//
// Step may be called from several drivers at once, a [Scheduler] and a window
// loop for example; only one tick runs at a time and concurrent calls are
// dropped. All other methods are safe for concurrent use.
type Composition struct {
	cfg Config

	clusterer ClusteringOracle
	hull      HullOracle
	points    []Point
	rng       *rand.Rand

	inFlight atomic.Bool
	mu       sync.Mutex // guards ext.Cloud and stats
	ext      Extractor
	lines    Accumulator
	stats    Stats
}

// Stats counts ticks by outcome.
type Stats struct {
	Ticks               int
	Extracted           int
	Exhausted           int
	NoQualifyingCluster int
	DegenerateHull      int
	// Initial and Remaining are the sizes of the cloud at creation and now.
	Initial   int
	Remaining int
	// Consumed is the number of points removed from the cloud.
	Consumed int
}

func (st *Stats) record(res Result) {
	st.Ticks++
	switch res.Outcome {
	case Extracted:
		st.Extracted++
	case Exhausted:
		st.Exhausted++
	case NoQualifyingCluster:
		st.NoQualifyingCluster++
	case DegenerateHull:
		st.DegenerateHull++
	}
	st.Consumed += res.Consumed
	st.Remaining = res.Remaining
}

// Option configures a [Composition].
type Option func(*Composition)

// WithClusterer replaces the default [KMeans] oracle.
func WithClusterer(o ClusteringOracle) Option {
	return func(c *Composition) { c.clusterer = o }
}

// WithHull replaces the default [MonotoneChain] oracle.
func WithHull(o HullOracle) Option {
	return func(c *Composition) { c.hull = o }
}

// WithPoints starts the composition from pts instead of sampling
// Config.PointCount random points. The points are copied and must be finite.
func WithPoints(pts []Point) Option {
	return func(c *Composition) { c.points = append([]Point(nil), pts...) }
}

// WithRand samples points from rng instead of a generator seeded with
// Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composition) { c.rng = rng }
}

// New creates a composition. It returns a [*ConfigError] if cfg is invalid.
func New(cfg Config, opts ...Option) (*Composition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Composition{
		cfg:       cfg,
		clusterer: KMeans{},
		hull:      MonotoneChain{},
	}
	for _, opt := range opts {
		opt(c)
	}

	var cloud *PointCloud
	if c.points != nil {
		for _, p := range c.points {
			if p.IsNaN() || p.IsInf() {
				return nil, &ConfigError{"point", p, "must be finite"}
			}
		}
		cloud = NewPointCloud(c.points)
		c.points = nil
	} else {
		if c.rng == nil {
			if c.cfg.Seed == 0 {
				c.cfg.Seed = uint64(time.Now().UnixNano())
			}
			c.rng = rand.New(rand.NewPCG(c.cfg.Seed, c.cfg.Seed>>32|c.cfg.Seed<<32))
		}
		var err error
		cloud, err = NewRandomCloud(cfg.PointCount, cfg.Paper.Rect(), cfg.Margin, c.rng)
		if err != nil {
			return nil, err
		}
	}

	c.ext = Extractor{
		Cloud:        cloud,
		Lines:        &c.lines,
		Clusterer:    c.clusterer,
		Hull:         c.hull,
		ClusterCount: cfg.ClusterCount,
	}
	c.stats = Stats{Initial: cloud.Initial(), Remaining: cloud.Len()}
	return c, nil
}

// Step runs one tick. It returns false without doing anything if another
// tick is in flight.
func (c *Composition) Step() (Result, bool) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{}, false
	}
	defer c.inFlight.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.ext.Tick()
	c.stats.record(res)
	return res, true
}

// Lines returns a snapshot of the patches extracted so far, in order.
func (c *Composition) Lines() []Polyline { return c.lines.Snapshot() }

// Remaining returns the number of points left in the cloud.
func (c *Composition) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ext.Cloud.Len()
}

// Points returns a copy of the positions left in the cloud.
func (c *Composition) Points() []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ext.Cloud.Points()
}

func (c *Composition) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Done reports whether the cloud is exhausted. No later tick can extract
// another patch.
func (c *Composition) Done() bool {
	return c.Remaining() <= c.cfg.ClusterCount
}

// Config returns the configuration the composition was created with. If
// Config.Seed was zero, the returned Seed is the one that was picked.
func (c *Composition) Config() Config { return c.cfg }

// Draw strokes every patch extracted so far onto cv.
func (c *Composition) Draw(cv Canvas, style StrokeStyle) {
	DrawPolylines(cv, c.lines.Snapshot(), style)
}

// Scheduler returns a scheduler that steps c every Config.TickPeriod and
// stops once the cloud is exhausted.
func (c *Composition) Scheduler() *Scheduler {
	return &Scheduler{
		Period:            c.cfg.TickPeriod,
		Step:              c.Step,
		StopWhenExhausted: true,
	}
}
