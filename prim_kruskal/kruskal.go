package prim_kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/dsu"
)

// candidate is an unordered pair (u < v) scored by distance.
type candidate struct {
	u, v int
	dist float64
}

// Kruskal computes the minimum spanning tree of the correlation distances of src.
//
// Steps:
//  1. Validate src (corr.Validate with MinNodes).
//  2. Materialize every unmasked pair u < v with its distance.
//  3. Sort by ascending distance; equal distances keep ascending (u,v) order.
//  4. Scan with a dsu.Forest: accept an edge iff it joins two components.
//  5. Stop at n−1 accepted edges; fewer after exhausting the list → ErrDisconnected.
//
// The returned graph is frozen, has n−1 edges weighted by M[u][v], and is
// never partial: on failure the result is (nil, err).
//
// Complexity: O(n² log n) time, O(n²) memory for the candidate list.
func Kruskal(src corr.Source, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	m, err := corr.Validate(src, MinNodes)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}
	labels, err := corr.ResolveLabels(m, o.Labels)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}
	n := m.Size()

	candidates, err := candidatePairs(m, o)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.u != b.u {
			return a.u < b.u
		}
		return a.v < b.v
	})

	forest := dsu.New(n)
	accepted := make([]candidate, 0, n-1)
	var total float64
	for _, c := range candidates {
		if !forest.Union(c.u, c.v) {
			continue // endpoints already connected: would close a cycle
		}
		accepted = append(accepted, c)
		total += c.dist
		if len(accepted) == n-1 {
			break
		}
	}
	if len(accepted) < n-1 {
		return nil, fmt.Errorf("Kruskal: %w: %d components remain", ErrDisconnected, forest.Components())
	}

	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}
	for _, c := range accepted {
		if err = g.AddEdge(c.u, c.v, m.At(c.u, c.v)); err != nil {
			return nil, fmt.Errorf("Kruskal: %w", err)
		}
	}
	g.Freeze()

	o.Logger.WithFields(logrus.Fields{
		"method":         MethodKruskal,
		"nodes":          n,
		"candidates":     len(candidates),
		"total_distance": total,
	}).Debug("minimum spanning tree built")

	return g, nil
}

// candidatePairs lists every unmasked pair u < v with its distance.
func candidatePairs(m *corr.Matrix, o MSTOptions) ([]candidate, error) {
	n := m.Size()
	out := make([]candidate, 0, n*(n-1)/2)

	var u, v int
	var c, d float64
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			c = m.At(u, v)
			if o.Filter != nil && !o.Filter(u, v, c) {
				continue
			}
			d = o.Distance(c)
			if math.IsNaN(d) {
				return nil, fmt.Errorf("%w: distance(%g) is NaN", ErrInvalidOption, c)
			}
			out = append(out, candidate{u: u, v: v, dist: d})
		}
	}

	return out, nil
}
