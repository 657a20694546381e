package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// AddEdge inserts the undirected edge (u,v) with weight w.
//
// Steps:
//  1. Validate endpoints (range, self-loop) and weight (finite).
//  2. Lock; reject if frozen or if the edge exists in either orientation.
//  3. Store normalized (min,max) edge, mirror adjacency, update the running total.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, ok := g.adjacency[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	if u > v {
		u, v = v, u
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})
	g.total += w

	return nil
}

// Freeze makes the graph read-only. Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adjacency) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Label returns the external label of node id, or its decimal index when
// the graph carries no labels.
func (g *Graph) Label(id int) string {
	if g.labels != nil {
		return g.labels[id]
	}

	return strconv.Itoa(id)
}

// Nodes returns every node in ascending ID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.adjacency))
	for i := range out {
		out[i].ID = i
		if g.labels != nil {
			out[i].Label = g.labels[i]
		}
	}

	return out
}

// Edges returns a copy of all edges sorted by (U, V).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// InsertionOrder returns a copy of the edges in the order the builder added them.
func (g *Graph) InsertionOrder() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether (u,v) is present in either orientation.
// Out-of-range endpoints report false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of (u,v) and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= len(g.adjacency) || v < 0 || v >= len(g.adjacency) {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[u][v]

	return w, ok
}

// NeighborIDs returns the sorted neighbors of id.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if id < 0 || id >= len(g.adjacency) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrNodeOutOfRange)
	}

	g.mu.RLock()
	out := make([]int, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	if id < 0 || id >= len(g.adjacency) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id]), nil
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.total
}
