// Package planar decides whether an undirected simple graph can be drawn in
// the plane without crossings, and tracks a growing planar graph edge by edge.
//
// What & Why
//
//   - IsPlanar(n, edges) runs the left-right (LR) planarity criterion of
//     de Fraysseix and Rosenstiehl in the formulation of Brandes: one DFS
//     orients the graph and computes lowpoints, a second DFS checks that the
//     return edges of sibling subtrees can be split between the two sides
//     of the tree path without conflict. No embedding is produced.
//     Complexity: O(n + m).
//
//   - Tracker is the capability used by the PMFG builder: CanAdd(u, v)
//     asks whether the current graph plus (u,v) is still planar without
//     changing anything; Commit(u, v) records an edge that passed the test.
//
// Pruning (applied before any full test)
//
//  1. A simple planar graph on n ≥ 3 nodes has at most 3n−6 edges.
//  2. The smallest non-planar graphs (K3,3 and K5) have 9 and 10 edges, so
//     anything with fewer than 9 edges is planar.
//  3. An edge joining two different connected components cannot break
//     planarity (draw one component inside a face of the other).
//
// Trade-off
//
//	Tracker re-runs the LR test on the whole graph for each candidate that
//	survives pruning, O(n) per test because the graph stays sparse. For the
//	C(n,2) candidates of a PMFG that is O(n³) overall: fine up to a few
//	hundred nodes. An incremental embedding would be asymptotically faster;
//	the Tracker interface hides which one is used.
//
// Tracker is not safe for concurrent mutation. Give each build its own.
package planar
