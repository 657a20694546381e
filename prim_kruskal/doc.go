// Package prim_kruskal builds the Minimum Spanning Tree filter of a
// correlation matrix: the tree on n nodes that connects every variable
// through the strongest available correlations.
//
// What & Why
//
//   - Correlation is not a metric, so each pair is first mapped to a distance
//     with a monotone decreasing transform. The canonical choice is
//
//     d(i,j) = sqrt(2·(1 − M[i][j]))
//
//     which sends perfect correlation to 0 and perfect anti-correlation to 2.
//
//   - The MST under d keeps exactly n−1 edges and minimizes Σ d. Because d is
//     decreasing in M, it is the maximum-correlation spanning tree as well.
//
//   - Edges of the returned graph carry the original correlation M[u][v],
//     not the distance.
//
// Algorithms Provided
//
//   - Kruskal(src, opts...) (default)
//     Strategy: materialize every candidate pair, sort by ascending distance
//     with ties broken by ascending (u,v), then grow components with a
//     disjoint-set forest (dsu.Forest), rejecting edges whose endpoints already
//     share a component.
//     Complexity: Time O(n² log n), Space O(n²) for the candidate list.
//
//   - Prim(src, opts...)
//     Strategy: dense Prim. Grow one tree from Root, keeping for every outside
//     node its cheapest connection; each step attaches the closest node.
//     Ties prefer the lexicographically smaller (u,v) pair.
//     Complexity: Time O(n²), Space O(n). No candidate list is materialized,
//     which makes it the better choice for large n.
//
//   - Compute(src, opts...) dispatches on MSTOptions.Method.
//
// Both return a tree of minimum total distance. With pairwise distinct
// distances the tree is unique and both algorithms return the same edges;
// under ties each is deterministic but they may pick different, equally
// light trees.
//
// Masked input
//
//	WithEdgeFilter(func(u, v int, c float64) bool) excludes candidate pairs
//	(for partial or masked matrices). If the remaining pairs cannot span all
//	nodes, both algorithms fail with ErrDisconnected and return no graph.
//
// Error Conditions
//
//   - corr.ErrInvalidMatrix (+ specific cause) – malformed input
//   - corr.ErrInsufficientNodes                 – n < 2
//   - ErrDisconnected                           – masked pairs cannot span
//   - ErrInvalidOption                          – unknown method, bad root, NaN distance
package prim_kruskal
