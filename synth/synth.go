// SPDX-License-Identifier: MIT
// Package: topcorr/synth

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topcorr/corr"
)

const (
	methodBlock    = "Block"
	methodRandom   = "Random"
	methodDistinct = "Distinct"

	distinctHigh = 0.9
	distinctLow  = 0.4
)

// Block returns an n×n matrix with nodes split into `blocks` contiguous
// groups of near-equal size (the first n%blocks groups get one extra node).
// Pairs in the same group correlate at `within`, other pairs at `between`.
//
// within and between must lie in [-1, 1]; a clean block matrix is positive
// semidefinite when 0 ≤ between ≤ within, which is not enforced.
// Complexity: O(n²).
func Block(n, blocks int, within, between float64, opts ...Option) (*corr.Matrix, error) {
	c := newConfig(opts)
	if n < 1 || blocks < 1 || blocks > n {
		return nil, fmt.Errorf("%s: n=%d blocks=%d: %w", methodBlock, n, blocks, ErrTooFewNodes)
	}
	if math.Abs(within) > 1 || math.Abs(between) > 1 {
		return nil, fmt.Errorf("%s: within=%g between=%g: %w", methodBlock, within, between, ErrInvalidCorrelation)
	}
	if c.noise > 0 && c.rng == nil {
		return nil, fmt.Errorf("%s: noise needs rng: %w", methodBlock, ErrNeedRandSource)
	}

	group := Membership(n, blocks)
	rows := identity(n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = between
			if group[i] == group[j] {
				v = within
			}
			if c.noise > 0 {
				v = clamp(v + (2*c.rng.Float64()-1)*c.noise)
			}
			rows[i][j], rows[j][i] = v, v
		}
	}

	return finish(methodBlock, rows, c)
}

// Membership returns the group index of each node as Block assigns it.
func Membership(n, blocks int) []int {
	out := make([]int, n)
	if blocks < 1 {
		return out
	}
	size, extra := n/blocks, n%blocks
	node := 0
	for b := 0; b < blocks; b++ {
		k := size
		if b < extra {
			k++
		}
		for ; k > 0; k-- {
			out[node] = b
			node++
		}
	}

	return out
}

// Random draws a k-factor model: loadings L (n×k) ~ N(0,1), C = L·Lᵀ + I,
// and returns the correlation D^{-1/2}·C·D^{-1/2} with D = diag(C).
// The result is positive definite. Requires an RNG.
// Complexity: O(n²·k).
func Random(n, factors int, opts ...Option) (*corr.Matrix, error) {
	c := newConfig(opts)
	if n < 1 || factors < 1 {
		return nil, fmt.Errorf("%s: n=%d factors=%d: %w", methodRandom, n, factors, ErrTooFewNodes)
	}
	if c.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	load := make([][]float64, n)
	for i := range load {
		load[i] = make([]float64, factors)
		for f := range load[i] {
			load[i][f] = c.rng.NormFloat64()
		}
	}

	cov := make([]float64, n)
	for i := 0; i < n; i++ {
		cov[i] = 1 + dot(load[i], load[i])
	}

	rows := identity(n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = clamp(dot(load[i], load[j]) / math.Sqrt(cov[i]*cov[j]))
			rows[i][j], rows[j][i] = v, v
		}
	}

	return finish(methodRandom, rows, c)
}

// Distinct returns a deterministic matrix whose off-diagonal values are
// pairwise distinct: pairs in lexicographic (i,j) order take evenly spaced
// values from 0.9 down to 0.4. For n=4 these are 0.9, 0.8, …, 0.4.
func Distinct(n int, opts ...Option) (*corr.Matrix, error) {
	c := newConfig(opts)
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDistinct, n, ErrTooFewNodes)
	}

	pairs := n * (n - 1) / 2
	step := 0.0
	if pairs > 1 {
		step = (distinctHigh - distinctLow) / float64(pairs-1)
	}

	rows := identity(n)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := distinctHigh - float64(k)*step
			rows[i][j], rows[j][i] = v, v
			k++
		}
	}

	return finish(methodDistinct, rows, c)
}

func finish(method string, rows [][]float64, c config) (*corr.Matrix, error) {
	var opts []corr.Option
	if c.labels != nil {
		opts = append(opts, corr.WithLabels(c.labels))
	}
	m, err := corr.New(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

func identity(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}

	return rows
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
