// Package core defines Node, Edge and Graph together with the sentinel errors
// returned by graph mutation.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the undirected edge already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadWeight indicates a NaN or ±Inf weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrFrozen indicates a mutation attempt on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrLabels indicates a label slice whose length differs from the node count.
	ErrLabels = errors.New("core: label count does not match node count")

	// ErrNegativeSize indicates a negative node count.
	ErrNegativeSize = errors.New("core: negative node count")
)

// Node is a vertex of the output graph. It carries no mutable state.
type Node struct {
	// ID is the row/column index of the node in the source matrix.
	ID int

	// Label is the caller-supplied external name, or "" when none was given.
	Label string
}

// Edge is an undirected weighted edge, normalized so that U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int

	// Weight is the original correlation value M[U][V].
	Weight float64
}

// Graph is the in-memory undirected weighted graph returned by builders.
//
// mu guards adjacency, edges and frozen. Node labels are immutable after
// NewGraph and read without locking.
type Graph struct {
	mu sync.RWMutex

	labels []string // nil or len == n

	// adjacency[u][v] = weight; mirrored for undirected edges
	adjacency []map[int]float64
	edges     []Edge // insertion order, U < V
	total     float64
	frozen    bool
}

// NewGraph creates an empty graph on n nodes. labels may be nil; otherwise
// len(labels) must equal n.
// Complexity: O(n).
func NewGraph(n int, labels []string) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if labels != nil && len(labels) != n {
		return nil, ErrLabels
	}

	g := &Graph{adjacency: make([]map[int]float64, n)}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]float64)
	}
	if labels != nil {
		g.labels = append([]string(nil), labels...)
	}

	return g, nil
}
