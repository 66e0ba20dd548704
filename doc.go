// Package patchwork generates line art for pen plotters by carving a random
// point cloud into convex patches.
//
// A composition starts with a cloud of points sampled uniformly from a sheet
// of paper, inset by a margin. On every tick, the remaining cloud is split into
// k groups by a clustering oracle, the smallest group with at least
// [MinClusterSize] points is selected, and its convex hull is appended to the
// output as a closed [Polyline]. Every point of the selected group, not just
// the hull vertices, is then removed from the cloud. Sparse regions go first,
// so the patches grow denser and smaller towards the end. The process stops
// being productive once the cloud holds k points or fewer.
//
// # Composition, ticks, and scheduling
//
// [Composition] owns all state of a piece: its [Config], its [PointCloud], its
// [Accumulator] of patches and the [Extractor] that moves points from one to
// the other. [Composition.Step] runs one tick and reports its [Outcome].
// Ticks never fail. A tick that cannot produce a patch, because no group is
// large enough or the hull is degenerate, leaves the state untouched and a
// later tick may succeed.
//
// [Scheduler] runs ticks on a fixed period. Ticks run one at a time; if a tick
// is still running when the next one is due, the later one is dropped rather
// than queued. Readers such as a window drawing the piece use
// [Composition.Lines], a snapshot that later ticks never modify.
//
// # Oracles
//
// Clustering and convex hulls are delegated to a [ClusteringOracle] and a
// [HullOracle]. [KMeans] and [MonotoneChain] are the defaults, and
// [ClusterFunc] and [HullFunc] turn plain functions into oracles, which is
// mostly useful in tests. Oracles work on indices into the slice of points
// they are given. Their output is not trusted: out-of-range and repeated
// indices are dropped, and a hull with fewer than three distinct vertices
// produces no patch.
//
// # Units and drawing
//
// All coordinates are in centimetres on the paper, with the origin in the top
// left corner and y pointing down. [Canvas] abstracts a path-based drawing
// surface; [DrawPolylines] strokes patches onto one. The svgplot, raster and
// screen packages provide SVG, PNG and interactive output respectively, and
// package archive keeps finished pieces in a database.
//
// Paths can also be written as SVG path data with [SVG] and [WriteSVG].
package patchwork
