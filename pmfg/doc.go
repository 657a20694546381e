// Package pmfg builds the Planar Maximally Filtered Graph of a correlation
// matrix: the greedy maximum-weight planar subgraph, which keeps 3n−6 of
// the C(n,2) pairs.
//
// Algorithm
//
//  1. Validate the matrix (n ≥ 4).
//  2. Sort every pair u < v by descending M[u][v]; equal weights are
//     ordered by ascending (u,v).
//  3. Walk the list. Each pair is offered to a planarity Checker
//     (planar.Tracker by default): CanAdd asks, Commit records.
//  4. Stop as soon as 3n−6 edges are accepted. A maximal planar graph on
//     n ≥ 3 nodes has exactly that many edges, and greedy insertion over
//     the complete candidate set always reaches it.
//
// The result is the same as re-testing planarity from scratch for every
// candidate; the Checker only decides how each test is carried out.
//
// Complexity: O(n² log n) for the sort plus one planarity test per
// candidate that joins an already connected pair, O(n) each.
package pmfg
