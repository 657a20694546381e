package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in edges) from the start; -1 when unreached.
type BFSResult struct {
	Order []int
	Depth []int
}

// Eccentricity returns the largest depth reached from the start node.
func (r *BFSResult) Eccentricity() int {
	ecc := 0
	for _, id := range r.Order {
		if r.Depth[id] > ecc {
			ecc = r.Depth[id]
		}
	}

	return ecc
}
