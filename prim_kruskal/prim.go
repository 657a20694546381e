package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
)

// Prim computes the minimum spanning tree by growing a single tree from the
// Root node over the complete distance graph (dense Prim, no heap).
//
// Steps:
//  1. Validate src and Root.
//  2. key[w] = cheapest distance from the tree to w, via parent[w].
//  3. Repeat n−1 times: attach the outside node with the smallest key; ties
//     prefer the smaller (parent,node) pair. Relax keys through it.
//  4. An infinite smallest key means the masked pairs cannot reach the rest → ErrDisconnected.
//
// Complexity: O(n²) time, O(n) memory.
func Prim(src corr.Source, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	m, err := corr.Validate(src, MinNodes)
	if err != nil {
		return nil, fmt.Errorf("Prim: %w", err)
	}
	labels, err := corr.ResolveLabels(m, o.Labels)
	if err != nil {
		return nil, fmt.Errorf("Prim: %w", err)
	}
	n := m.Size()
	if o.Root < 0 || o.Root >= n {
		return nil, fmt.Errorf("Prim: %w: root %d outside [0,%d)", ErrInvalidOption, o.Root, n)
	}

	var (
		inTree = make([]bool, n)
		key    = make([]float64, n)
		parent = make([]int, n)
		tree   = make([][2]int, 0, n-1)
		total  float64
	)
	for i := range key {
		key[i] = math.Inf(1)
		parent[i] = -1
	}

	relax := func(v int) error {
		for w := 0; w < n; w++ {
			if inTree[w] || w == v {
				continue
			}
			u, x := v, w
			if u > x {
				u, x = x, u
			}
			c := m.At(u, x)
			if o.Filter != nil && !o.Filter(u, x, c) {
				continue
			}
			d := o.Distance(c)
			if math.IsNaN(d) {
				return fmt.Errorf("%w: distance(%g) is NaN", ErrInvalidOption, c)
			}
			if d < key[w] || (d == key[w] && (parent[w] < 0 || pairLess(v, w, parent[w], w))) {
				key[w] = d
				parent[w] = v
			}
		}
		return nil
	}

	inTree[o.Root] = true
	if err = relax(o.Root); err != nil {
		return nil, fmt.Errorf("Prim: %w", err)
	}
	for step := 1; step < n; step++ {
		best := -1
		for w := 0; w < n; w++ {
			if inTree[w] || parent[w] < 0 {
				continue
			}
			if best < 0 || key[w] < key[best] ||
				(key[w] == key[best] && pairLess(parent[w], w, parent[best], best)) {
				best = w
			}
		}
		if best < 0 || math.IsInf(key[best], 1) {
			return nil, fmt.Errorf("Prim: %w: %d nodes unreachable from root", ErrDisconnected, n-step)
		}
		inTree[best] = true
		tree = append(tree, [2]int{parent[best], best})
		total += key[best]
		if err = relax(best); err != nil {
			return nil, fmt.Errorf("Prim: %w", err)
		}
	}

	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("Prim: %w", err)
	}
	for _, e := range tree {
		if err = g.AddEdge(e[0], e[1], m.At(e[0], e[1])); err != nil {
			return nil, fmt.Errorf("Prim: %w", err)
		}
	}
	g.Freeze()

	o.Logger.WithFields(logrus.Fields{
		"method":         MethodPrim,
		"nodes":          n,
		"root":           o.Root,
		"total_distance": total,
	}).Debug("minimum spanning tree built")

	return g, nil
}
