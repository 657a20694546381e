package planar

import "errors"

// Sentinel errors for tracker misuse.
var (
	// ErrNonPlanar indicates Commit was asked to record an edge that would
	// make the graph non-planar.
	ErrNonPlanar = errors.New("planar: edge would break planarity")

	// ErrBadEdge indicates an out-of-range endpoint, a self-loop, or an
	// edge that is already present.
	ErrBadEdge = errors.New("planar: invalid edge")
)

// nonPlanarFloor is the edge count of K3,3, the smallest non-planar simple graph.
const nonPlanarFloor = 9

// MaxEdges returns the edge bound of a maximal planar graph on n nodes:
// 3n−6 for n ≥ 3, C(n,2) below.
func MaxEdges(n int) int {
	if n < 3 {
		if n < 2 {
			return 0
		}
		return 1
	}

	return 3*n - 6
}
