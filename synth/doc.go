// SPDX-License-Identifier: MIT
// Package: topcorr/synth
//
// Package synth generates correlation matrices with known structure for
// tests, examples, benchmarks and the `topcorr generate` command.
//
// Generators:
//   - Block(n, blocks, within, between): equicorrelated clusters.
//   - Random(n, factors): a random factor model normalized to unit
//     diagonal, positive definite by construction.
//   - Distinct(n): deterministic, all off-diagonal values pairwise distinct,
//     so every tie-break rule is bypassed and results are unique.
//
// Determinism: stochastic generators draw from the RNG installed by
// WithSeed or WithRand, in a fixed order (i asc, j asc); the same seed
// yields the same matrix.
//
// Every result passes corr.Validate.
package synth
