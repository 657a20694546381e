// SPDX-License-Identifier: MIT

package corr

import (
	"errors"
	"fmt"
)

// Numeric policy shared by the validator and the transforms.
const (
	// SymmetryTolerance bounds |M[i][j] - M[j][i]| for a matrix to count as symmetric.
	SymmetryTolerance = 1e-9

	// RangeTolerance is the slack allowed on the unit diagonal and on the [-1, 1] bounds.
	RangeTolerance = 1e-9
)

// Sentinel errors for correlation-matrix validation and transforms.
var (
	// ErrInvalidMatrix is the umbrella kind for every malformed-input failure.
	ErrInvalidMatrix = errors.New("corr: invalid correlation matrix")

	// ErrShape indicates a non-square, ragged, or empty input.
	ErrShape = errors.New("corr: shape mismatch")

	// ErrAsymmetry indicates |M[i][j]-M[j][i]| exceeded SymmetryTolerance.
	ErrAsymmetry = errors.New("corr: matrix is not symmetric within tolerance")

	// ErrNonFinite indicates a NaN or ±Inf entry.
	ErrNonFinite = errors.New("corr: NaN or Inf encountered")

	// ErrOutOfRange indicates a diagonal entry != 1 or an off-diagonal entry outside [-1, 1].
	ErrOutOfRange = errors.New("corr: value out of correlation range")

	// ErrInsufficientNodes indicates n is below the minimum the calling algorithm needs.
	ErrInsufficientNodes = errors.New("corr: insufficient nodes")

	// ErrLabels indicates a label slice whose length differs from n.
	ErrLabels = errors.New("corr: label count does not match matrix size")

	// ErrSingular indicates a zero pivot during inversion, or a perfect
	// correlation that leaves a partial correlation undefined.
	ErrSingular = errors.New("corr: singular matrix")
)

// invalidf tags err with the failing check and joins it under ErrInvalidMatrix,
// so both errors.Is(err, ErrInvalidMatrix) and errors.Is(err, <cause>) hold.
func invalidf(cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidMatrix, cause, fmt.Sprintf(format, args...))
}

// Source is the read-only input contract accepted by Validate and by every
// builder in topcorr. The method set is a subset of gonum's mat.Matrix
// (Dims and At, without T).
type Source interface {
	// Dims returns the number of rows and columns. A negative column count
	// reports a ragged input.
	Dims() (r, c int)

	// At returns the element at row i, column j. Callers stay within Dims.
	At(i, j int) float64
}

// Labeler is implemented by sources that carry node labels.
type Labeler interface {
	Labels() []string
}

// Rows adapts a plain [][]float64 to Source.
type Rows [][]float64

// Dims reports (len(rows), len(rows[0])); c is -1 when rows have differing lengths.
func (r Rows) Dims() (int, int) {
	if len(r) == 0 {
		return 0, 0
	}
	c := len(r[0])
	for _, row := range r[1:] {
		if len(row) != c {
			return len(r), -1
		}
	}

	return len(r), c
}

// At returns r[i][j].
func (r Rows) At(i, j int) float64 { return r[i][j] }

// Option configures matrix construction.
type Option func(*options)

type options struct {
	labels []string
}

// WithLabels attaches external node labels; len(labels) must equal n.
func WithLabels(labels []string) Option {
	return func(o *options) {
		o.labels = append([]string(nil), labels...)
	}
}
