package filter

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
)

// BuildKNN links every node i to the k nodes most correlated with it
// (descending M[i][j], ascending j on ties). The relation is symmetrized:
// an edge exists when either endpoint picked the other, so each node has
// degree at least k and the graph has between ⌈nk/2⌉ and nk edges.
//
// Requires n ≥ 2 and 1 ≤ k ≤ n−1, else ErrInvalidK.
// Complexity: O(n² log n).
func BuildKNN(src corr.Source, k int, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	m, err := corr.Validate(src, 2)
	if err != nil {
		return nil, fmt.Errorf("filter.KNN: %w", err)
	}
	n := m.Size()
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("filter.KNN: %w: k=%d, n=%d", ErrInvalidK, k, n)
	}
	labels, err := corr.ResolveLabels(m, o.Labels)
	if err != nil {
		return nil, fmt.Errorf("filter.KNN: %w", err)
	}

	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("filter.KNN: %w", err)
	}
	peers := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		peers = peers[:0]
		for j := 0; j < n; j++ {
			if j != i {
				peers = append(peers, j)
			}
		}
		row := i
		sort.SliceStable(peers, func(a, b int) bool {
			return m.At(row, peers[a]) > m.At(row, peers[b])
		})
		for _, j := range peers[:k] {
			if g.HasEdge(i, j) {
				continue
			}
			if err = g.AddEdge(i, j, m.At(i, j)); err != nil {
				return nil, fmt.Errorf("filter.KNN: %w", err)
			}
		}
	}
	g.Freeze()

	o.Logger.WithFields(logrus.Fields{
		"nodes": n,
		"k":     k,
		"edges": g.EdgeCount(),
	}).Debug("knn built")

	return g, nil
}
