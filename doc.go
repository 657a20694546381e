// Package topcorr turns a dense correlation matrix into a sparse graph that
// keeps its strongest dependency structure.
//
// What is in the box?
//
//	Filters over an n×n correlation matrix M:
//		• MST:  minimum spanning tree of d = sqrt(2·(1-M)), Kruskal or Prim
//		• PMFG: planar maximally filtered graph, 3(n-2) edges
//		• TMFG: triangulated maximally filtered graph, 3(n-2) edges, no planarity tests
//		• kNN:  each node linked to its k most correlated peers
//
//	Supporting pieces:
//		• corr:       validated matrix, threshold, partial correlation, dependency network
//		• planar:     left-right planarity test and an incremental tracker
//		• bfs:        connectivity, component and diameter checks on output graphs
//		• synth:      deterministic synthetic matrices for tests and demos
//		• converters: CSV / JSON / YAML matrix input and graph output
//		• filter:     one entry point for every method, concurrent BuildAll
//
// Every builder validates its input, is deterministic (ties break by node
// index), and returns a frozen *core.Graph whose edges carry the original
// signed correlation.
//
// Package layout:
//
//	core/         frozen weighted undirected graph over int node IDs
//	corr/         correlation matrix and transforms
//	dsu/          union-find for Kruskal and the planarity fast path
//	prim_kruskal/ MST
//	planar/       planarity
//	pmfg/         PMFG
//	tmfg/         TMFG
//	filter/       facade, kNN, verification, metrics hooks
//	cmd/topcorr/  command-line front end
//
// Quick example:
//
//	m, _ := corr.New(rows)
//	g, _ := tmfg.Build(m)
//	fmt.Println(g.EdgeCount()) // 3n-6
//
//	go install github.com/katalvlaran/topcorr/cmd/topcorr@latest
package topcorr
