// SPDX-License-Identifier: MIT

package corr

import (
	"fmt"
	"math"
)

// pivotTolerance marks a pivot as numerically zero.
const pivotTolerance = 1e-12

// inverse computes A^{-1} using Doolittle LU factorization without pivoting.
//
// Implementation:
//   - Stage 1: factor A = L·U (L unit lower, U upper), O(n³).
//   - Stage 2: for each basis column e_col solve L·y = e_col, then U·x = y.
//
// Validate does not check positive definiteness. Without pivoting, a
// nonsingular but indefinite input whose leading principal minor vanishes,
// such as [[1,1,.5],[1,1,0],[.5,0,1]], is reported as singular.
// Returns ErrSingular when |U[i][i]| < pivotTolerance.
//
// Complexity: Time O(n³), Space O(n²).
func inverse(n int, a []float64) ([]float64, error) {
	l := make([]float64, n*n)
	u := make([]float64, n*n)

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// row i of U
		for k = i; k < n; k++ {
			sum = 0
			for j = 0; j < i; j++ {
				sum += l[i*n+j] * u[j*n+k]
			}
			u[i*n+k] = a[i*n+k] - sum
		}
		if math.Abs(u[i*n+i]) < pivotTolerance {
			return nil, fmt.Errorf("inverse: pivot %d: %w", i, ErrSingular)
		}
		// column i of L
		l[i*n+i] = 1
		for k = i + 1; k < n; k++ {
			sum = 0
			for j = 0; j < i; j++ {
				sum += l[k*n+j] * u[j*n+i]
			}
			l[k*n+i] = (a[k*n+i] - sum) / u[i*n+i]
		}
	}

	inv := make([]float64, n*n)
	y := make([]float64, n)
	x := make([]float64, n)
	var col int
	for col = 0; col < n; col++ {
		// forward: L·y = e_col
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// backward: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += u[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// PartialCorrelation returns the matrix of partial correlations of every pair
// given all other variables: with P = M^{-1},
//
//	out[i][j] = -P[i][j] / sqrt(P[i][i]·P[j][j]),  out[i][i] = 1.
//
// Results are clamped to [-1, 1] to absorb rounding. A singular M yields
// ErrSingular, and so does an indefinite M with a vanishing leading minor
// (the inverse does not pivot).
//
// Complexity: Time O(n³), Space O(n²).
func PartialCorrelation(m *Matrix) (*Matrix, error) {
	n := m.n
	prec, err := inverse(n, m.data)
	if err != nil {
		return nil, fmt.Errorf("PartialCorrelation: %w", err)
	}

	out := make([]float64, n*n)
	var i, j int
	var den, v float64
	for i = 0; i < n; i++ {
		out[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			den = prec[i*n+i] * prec[j*n+j]
			if den <= 0 {
				return nil, fmt.Errorf("PartialCorrelation: precision diagonal (%d,%d): %w", i, j, ErrSingular)
			}
			v = clampUnit(-prec[i*n+j] / math.Sqrt(den))
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return fromData(n, out, m.labels), nil
}

// partialGiven is the first-order partial correlation of i and j controlling for k.
func partialGiven(m *Matrix, i, j, k int) (float64, error) {
	rik, rkj := m.At(i, k), m.At(k, j)
	den := (1 - rik*rik) * (1 - rkj*rkj)
	if den <= 0 {
		return 0, fmt.Errorf("partial(%d,%d|%d): %w", i, j, k, ErrSingular)
	}

	return (m.At(i, j) - rik*rkj) / math.Sqrt(den), nil
}

// DependencyNetwork computes the influence matrix of the partial-correlation
// dependency network: out[k][i] is the average, over every other node j, of
// how much controlling for k changes the correlation of i with j,
//
//	D(i,j,k)  = M[i][j] - partial(i,j|k)   for distinct i, j, k
//	D(i,k,k)  = 1
//	out[k][i] = Σ_{j≠i} D(i,j,k) / (n-1),  out[i][i] = 0.
//
// The result is not symmetric. n must be at least 3.
//
// Complexity: Time O(n³), Space O(n²).
func DependencyNetwork(m *Matrix) ([][]float64, error) {
	n := m.n
	if n < 3 {
		return nil, invalidf(ErrInsufficientNodes, "dependency network needs n>=3, got %d", n)
	}

	out := make([][]float64, n)
	for k := range out {
		out[k] = make([]float64, n)
	}

	var i, j, k int
	var sum, p float64
	var err error
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			if i == k {
				continue
			}
			sum = 1 // j == k term
			for j = 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				if p, err = partialGiven(m, i, j, k); err != nil {
					return nil, fmt.Errorf("DependencyNetwork: %w", err)
				}
				sum += m.At(i, j) - p
			}
			out[k][i] = sum / float64(n-1)
		}
	}

	return out, nil
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
