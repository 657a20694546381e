package bfs

import (
	"fmt"

	"github.com/katalvlaran/topcorr/core"
)

// BFS runs breadth-first search on g starting from startID. Edge weights
// are ignored. Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(g *core.Graph, startID int) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if startID < 0 || startID >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	res := &BFSResult{
		Order: make([]int, 0, n),
		Depth: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	res.Depth[startID] = 0
	queue := make([]int, 0, n)
	queue = append(queue, startID)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %d: %w", id, err)
		}
		for _, nbr := range neighbors {
			if res.Depth[nbr] < 0 {
				res.Depth[nbr] = res.Depth[id] + 1
				queue = append(queue, nbr)
			}
		}
	}

	return res, nil
}

// Components labels every node with the index of its connected component,
// numbered in order of the smallest node they contain, and returns the
// labels plus the component count.
// Complexity: O(V + E).
func Components(g *core.Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.Order()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	count := 0
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			return nil, 0, err
		}
		for _, id := range res.Order {
			comp[id] = count
		}
		count++
	}

	return comp, count, nil
}

// Unreachable returns, in ascending order, the nodes not reachable from node 0.
func Unreachable(g *core.Graph) ([]int, error) {
	comp, _, err := Components(g)
	if err != nil {
		return nil, err
	}
	var out []int
	for id, c := range comp {
		if c != 0 {
			out = append(out, id)
		}
	}

	return out, nil
}

// IsConnected reports whether every node is reachable from node 0.
// The empty graph counts as connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Order() == 0 {
		return true, nil
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.Order(), nil
}

// IsTree reports whether g is connected with exactly n−1 edges, which for a
// simple graph is equivalent to connected and acyclic.
func IsTree(g *core.Graph) (bool, error) {
	ok, err := IsConnected(g)
	if err != nil || !ok {
		return false, err
	}
	if g.Order() == 0 {
		return true, nil
	}

	return g.EdgeCount() == g.Order()-1, nil
}

// Diameter returns the largest hop distance between two nodes of the same
// component, running one BFS per node. An edgeless graph has diameter 0.
// Complexity: O(V·(V + E)).
func Diameter(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	d := 0
	for s := 0; s < g.Order(); s++ {
		res, err := BFS(g, s)
		if err != nil {
			return 0, err
		}
		if ecc := res.Eccentricity(); ecc > d {
			d = ecc
		}
	}

	return d, nil
}
