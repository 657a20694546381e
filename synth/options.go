// SPDX-License-Identifier: MIT
// Package: topcorr/synth
//
// options.go: functional options for the synth package.
//
// Option constructors panic on meaningless input (nil RNG, negative noise);
// generators themselves only return sentinel errors.

package synth

import "math/rand"

type config struct {
	rng    *rand.Rand
	noise  float64
	labels []string
}

// Option customizes a generator.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNoise perturbs Block off-diagonal entries by a symmetric uniform draw
// in [-eps, eps], clamped to [-1, 1]. Requires an RNG. Panics on eps < 0.
func WithNoise(eps float64) Option {
	if eps < 0 {
		panic("synth: WithNoise(eps < 0)")
	}
	return func(c *config) { c.noise = eps }
}

// WithLabels attaches node labels to the generated matrix.
func WithLabels(labels []string) Option {
	return func(c *config) { c.labels = labels }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
