package pmfg

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/logging"
	"github.com/katalvlaran/topcorr/planar"
)

type candidate struct {
	u, v int
	w    float64
}

// Build returns the PMFG of src as a frozen graph with exactly 3n−6 edges.
// Edges are inserted in acceptance order, which Graph.InsertionOrder exposes.
//
// Errors: corr.ErrInvalidMatrix (with its cause, including
// corr.ErrInsufficientNodes for n < 4) and ErrNotMaximal.
func Build(src corr.Source, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := corr.Validate(src, MinNodes)
	if err != nil {
		return nil, fmt.Errorf("pmfg.Build: %w", err)
	}
	labels, err := corr.ResolveLabels(m, o.Labels)
	if err != nil {
		return nil, fmt.Errorf("pmfg.Build: %w", err)
	}
	n := m.Size()
	target := planar.MaxEdges(n)

	candidates := sortedCandidates(m)
	checker := o.NewChecker(n)
	accepted := make([]candidate, 0, target)
	var rejected int
	for _, c := range candidates {
		if !checker.CanAdd(c.u, c.v) {
			rejected++
			continue
		}
		if err = checker.Commit(c.u, c.v); err != nil {
			return nil, fmt.Errorf("pmfg.Build: commit (%d,%d): %w", c.u, c.v, err)
		}
		accepted = append(accepted, c)
		if len(accepted) == target {
			break
		}
	}
	if len(accepted) != target {
		return nil, fmt.Errorf("pmfg.Build: %w: got %d of %d", ErrNotMaximal, len(accepted), target)
	}
	if f, ok := checker.(interface{ Full() bool }); ok && !f.Full() {
		return nil, fmt.Errorf("pmfg.Build: %w: checker not full after %d edges", ErrNotMaximal, target)
	}

	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("pmfg.Build: %w", err)
	}
	for _, c := range accepted {
		if err = g.AddEdge(c.u, c.v, c.w); err != nil {
			return nil, fmt.Errorf("pmfg.Build: %w", err)
		}
	}
	g.Freeze()

	fields := logrus.Fields{
		"nodes":    n,
		"edges":    len(accepted),
		"rejected": rejected,
		"scanned":  len(accepted) + rejected,
	}
	if t, ok := checker.(interface{ Tests() int }); ok {
		fields["planarity_tests"] = t.Tests()
	}
	logging.OrDiscard(o.Logger).WithFields(fields).Debug("pmfg built")

	return g, nil
}

// sortedCandidates lists all pairs u < v by descending weight, then ascending (u,v).
func sortedCandidates(m *corr.Matrix) []candidate {
	n := m.Size()
	out := make([]candidate, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			out = append(out, candidate{u: u, v: v, w: m.At(u, v)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.w != b.w {
			return a.w > b.w
		}
		if a.u != b.u {
			return a.u < b.u
		}
		return a.v < b.v
	})

	return out
}
