// Package tmfg builds the Triangulated Maximally Filtered Graph of a
// correlation matrix: a maximal planar graph grown face by face from a
// tetrahedron, with 3n−6 edges and 2n−4 triangular faces.
//
// Algorithm
//
//  1. Seed. Rank nodes by strength s_i = Σ_j w(i,j) and take the top
//     SeedCandidates (default 32). Among all 4-subsets of the candidates
//     pick the one with the largest total pairwise weight; ties go to the
//     lexicographically smallest subset. For n ≤ SeedCandidates this is
//     the exact C(n,4) search.
//  2. Grow. Keep the open faces. For each face remember the outside node
//     with the largest gain w(v,a)+w(v,b)+w(v,c), lowest node on ties.
//     Each step takes the face whose remembered gain is largest (ties: lowest
//     node, then lexicographically smallest face), connects the node to the
//     three corners and splits the face into three. Only faces whose cached
//     node was just consumed, and the three new faces, are rescored.
//  3. Stop after n−4 insertions.
//
// Weighting
//
//	w(i,j) is M[i][j], or |M[i][j]| with WithAbsolute. Either way the
//	output edges carry the signed M[i][j].
//
// Complexity: O(K⁴) for the seed with K = min(n, SeedCandidates), then
// O(n²) amortized for growth in typical inputs (each rescore is O(n)).
package tmfg
