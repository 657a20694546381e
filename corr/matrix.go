// SPDX-License-Identifier: MIT

package corr

import (
	"math"
	"strconv"
)

// Matrix is an immutable, validated n×n correlation matrix stored row-major.
// Once built it is safe for concurrent readers.
type Matrix struct {
	n      int       // dimension
	data   []float64 // row-major, len == n*n, exactly symmetric
	labels []string  // optional external labels, len == n when present
}

// New validates rows and returns an immutable Matrix.
// It is shorthand for Validate(Rows(rows), 1) with construction options applied.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := Validate(Rows(rows), 1)
	if err != nil {
		return nil, err
	}
	if o.labels != nil {
		if len(o.labels) != m.n {
			return nil, invalidf(ErrLabels, "got %d labels for n=%d", len(o.labels), m.n)
		}
		m.labels = o.labels
	}

	return m, nil
}

// Validate is the MatrixValidator: it checks shape, size, finiteness,
// symmetry and value range of src, and returns an immutable snapshot.
//
// Implementation:
//   - Stage 1: fast path for *Matrix (already validated): size check only.
//   - Stage 2: shape and size checks from Dims.
//   - Stage 3: one pass over the upper triangle (diagonal included) checking
//     finiteness, symmetry and range, copying values as it goes.
//
// Errors (all wrapped under ErrInvalidMatrix):
//   - ErrShape, ErrInsufficientNodes, ErrNonFinite, ErrAsymmetry, ErrOutOfRange.
//
// Complexity: O(n²) time and space; O(1) for the *Matrix fast path.
func Validate(src Source, minN int) (*Matrix, error) {
	if src == nil {
		return nil, invalidf(ErrShape, "nil source")
	}
	if m, ok := src.(*Matrix); ok {
		if m == nil {
			return nil, invalidf(ErrShape, "nil matrix")
		}
		if m.n < minN {
			return nil, invalidf(ErrInsufficientNodes, "n=%d, need at least %d", m.n, minN)
		}

		return m, nil
	}

	r, c := src.Dims()
	if c < 0 {
		return nil, invalidf(ErrShape, "ragged rows")
	}
	if r != c {
		return nil, invalidf(ErrShape, "%dx%d is not square", r, c)
	}
	if r == 0 {
		return nil, invalidf(ErrShape, "empty matrix")
	}
	n := r
	if n < minN {
		return nil, invalidf(ErrInsufficientNodes, "n=%d, need at least %d", n, minN)
	}

	data := make([]float64, n*n)
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij = src.At(i, j)
			aji = src.At(j, i)
			if !isFinite(aij) || !isFinite(aji) {
				return nil, invalidf(ErrNonFinite, "at (%d,%d)", i, j)
			}
			if math.Abs(aij-aji) > SymmetryTolerance {
				return nil, invalidf(ErrAsymmetry, "M[%d][%d]=%g, M[%d][%d]=%g", i, j, aij, j, i, aji)
			}
			if i == j {
				if math.Abs(aij-1) > RangeTolerance {
					return nil, invalidf(ErrOutOfRange, "diagonal M[%d][%d]=%g", i, i, aij)
				}
				data[i*n+i] = 1
				continue
			}
			if aij < -1-RangeTolerance || aij > 1+RangeTolerance {
				return nil, invalidf(ErrOutOfRange, "M[%d][%d]=%g", i, j, aij)
			}
			// mirror the upper triangle so the stored matrix is exactly symmetric
			data[i*n+j] = aij
			data[j*n+i] = aij
		}
	}

	m := &Matrix{n: n, data: data}
	if lb, ok := src.(Labeler); ok {
		if labels := lb.Labels(); labels != nil {
			if len(labels) != n {
				return nil, invalidf(ErrLabels, "got %d labels for n=%d", len(labels), n)
			}
			m.labels = append([]string(nil), labels...)
		}
	}

	return m, nil
}

// Dims returns (n, n).
func (m *Matrix) Dims() (int, int) { return m.n, m.n }

// Size returns n.
func (m *Matrix) Size() int { return m.n }

// At returns M[i][j]. Indices must lie in [0, n).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// ToRows returns a deep copy as [][]float64.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Labels returns a copy of the external labels, or nil when none were given.
func (m *Matrix) Labels() []string {
	if m.labels == nil {
		return nil
	}

	return append([]string(nil), m.labels...)
}

// Label returns the external label of node i, or its decimal index.
func (m *Matrix) Label(i int) string {
	if m.labels != nil {
		return m.labels[i]
	}

	return strconv.Itoa(i)
}

// WithLabels returns a copy of m carrying labels.
func (m *Matrix) WithLabels(labels []string) (*Matrix, error) {
	if len(labels) != m.n {
		return nil, invalidf(ErrLabels, "got %d labels for n=%d", len(labels), m.n)
	}

	return &Matrix{n: m.n, data: m.data, labels: append([]string(nil), labels...)}, nil
}

// ResolveLabels picks the label set for a graph built from m: explicit
// labels win, then the matrix's own, then nil (index naming).
func ResolveLabels(m *Matrix, explicit []string) ([]string, error) {
	if explicit != nil {
		if len(explicit) != m.n {
			return nil, invalidf(ErrLabels, "got %d labels for n=%d", len(explicit), m.n)
		}

		return explicit, nil
	}

	return m.Labels(), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fromData wraps already-valid row-major data; used by transforms that
// construct their output directly.
func fromData(n int, data []float64, labels []string) *Matrix {
	return &Matrix{n: n, data: data, labels: labels}
}
