// Package core provides the output graph shared by every filtering
// algorithm: an undirected, weighted, simple graph over n labeled nodes.
//
// A Graph G = (V,E) in topcorr has:
//
//   - a fixed node set V = {0, …, n-1}, each optionally carrying an external label
//   - undirected edges (u,v) == (v,u), stored once with U < V
//   - float64 weights holding the original correlation value M[u][v]
//   - no self-loops and no duplicate edges
//
// Lifecycle:
//
//	NewGraph(n, labels)      // empty, mutable
//	AddEdge(u, v, w) × k     // populated incrementally by a builder
//	Freeze()                 // returned to the caller read-only
//
// After Freeze, AddEdge returns ErrFrozen. Builders never hand out a graph
// that is not frozen, and never hand out a partial one: construction either
// fully succeeds or the builder returns (nil, err).
//
// Concurrency: a sync.RWMutex guards the adjacency and edge catalog, so a
// frozen graph may be read from many goroutines.
//
// Determinism: Nodes(), Edges() and NeighborIDs() return results sorted by
// node index; Edges() is sorted by (U, V).
//
// Complexity:
//
//	AddEdge      O(1) amortized
//	HasEdge      O(1)
//	Weight       O(1)
//	NeighborIDs  O(d·log d)
//	Edges        O(E·log E)
//	TotalWeight  O(E)
//
// Errors:
//
//	ErrNodeOutOfRange – endpoint outside [0, n)
//	ErrSelfLoop       – u == v
//	ErrDuplicateEdge  – edge already present in either orientation
//	ErrBadWeight      – NaN or ±Inf weight
//	ErrFrozen         – mutation after Freeze
//	ErrLabels         – label slice length differs from n
package core
