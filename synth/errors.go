// SPDX-License-Identifier: MIT
// Package: topcorr/synth
//
// errors.go: sentinel errors for the synth package.

package synth

import "errors"

// ErrTooFewNodes indicates n (or blocks, or factors) below the generator minimum.
var ErrTooFewNodes = errors.New("synth: parameter too small")

// ErrInvalidCorrelation indicates a requested correlation level outside [-1, 1]
// or a block structure that would not be a valid correlation matrix.
var ErrInvalidCorrelation = errors.New("synth: correlation level out of range")

// ErrNeedRandSource indicates a stochastic generator ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("synth: rng is required")
