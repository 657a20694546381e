// Package filter is the single entry point for turning a correlation matrix
// into a sparse graph.
//
//	g, err := filter.Build(ctx, m, filter.PMFG, filter.WithVerify())
//	all, err := filter.BuildAll(ctx, m, filter.MST, filter.PMFG, filter.TMFG)
//
// Methods
//
//   - MST:  prim_kruskal.Compute, n−1 edges.
//   - PMFG: pmfg.Build, 3n−6 edges.
//   - TMFG: tmfg.Build, 3n−6 edges.
//   - KNN:  KNN, each node linked to its k most correlated peers.
//
// Build observes ctx only before starting: the constructors themselves are
// bounded and run to completion. BuildAll runs one goroutine per method via
// errgroup; every goroutine builds its own planarity tracker and face set,
// only the validated matrix is shared (read-only).
//
// With a metrics.Recorder installed (WithRecorder) each build reports its
// duration and edge count, and each failure its reason. WithVerify re-checks
// the structural guarantee of every result (tree, planarity, edge count)
// with the bfs and planar packages before returning it.
package filter
