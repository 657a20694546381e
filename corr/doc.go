// SPDX-License-Identifier: MIT
//
// Package corr holds the correlation-matrix input surface shared by every
// filtering algorithm in topcorr: an immutable, validated n×n Matrix, the
// MatrixValidator (Validate) that produces it, and a handful of
// matrix-to-matrix transforms (Threshold, Absolute, PartialCorrelation,
// DependencyNetwork).
//
// Input model:
//
//	Any value that implements Source can be validated:
//
//	  type Source interface {
//	      Dims() (r, c int)
//	      At(i, j int) float64
//	  }
//
//	Rows ([][]float64) implements it directly, and the method set mirrors
//	gonum's mat.Matrix so a *mat.Dense or *mat.SymDense plugs in unchanged.
//
// Validation policy (Validate):
//
//   - shape: r == c, c >= 1, no ragged rows              → ErrShape
//   - size: n >= the algorithm minimum                    → ErrInsufficientNodes
//   - finiteness: no NaN / ±Inf anywhere                  → ErrNonFinite
//   - symmetry: |M[i][j] - M[j][i]| <= SymmetryTolerance  → ErrAsymmetry
//   - range: diagonal == 1, off-diagonal in [-1, 1]       → ErrOutOfRange
//
// Every failure also matches ErrInvalidMatrix via errors.Is, so callers can
// branch on the broad kind or on the specific check. Asymmetric input is never
// silently repaired; within tolerance the upper triangle is mirrored so the
// stored matrix is exactly symmetric.
//
// Complexity: Validate is O(n²) time and O(n²) space (one copy of the input).
// A *Matrix passed back into Validate is only re-checked for size, O(1).
package corr
