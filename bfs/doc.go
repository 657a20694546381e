// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult with the visit Order and each node's Depth
//     (−1 when unreached).
//   - Helpers built on BFS: Components, Unreachable, IsConnected, IsTree,
//     Diameter.
//
// Why
//
//	Filtered graphs come with structural guarantees: an MST is a spanning
//	tree, a PMFG or TMFG is connected. The filter package verifies them here
//	before handing a graph out, and the output documents report component
//	count and hop diameter.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in ascending ID order, and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E·log d) per walk (neighbor lists are sorted on each visit)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node is outside [0, n).
package bfs
