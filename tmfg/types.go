package tmfg

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/logging"
)

// MinNodes is the smallest matrix a TMFG is built for.
const MinNodes = 4

// DefaultSeedCandidates bounds the exact seed search.
const DefaultSeedCandidates = 32

// ErrInvalidOption indicates a seed candidate count below 4.
var ErrInvalidOption = errors.New("tmfg: invalid option")

// Face is a triangle of the embedding, corners in ascending order.
type Face [3]int

func makeFace(a, b, c int) Face {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return Face{a, b, c}
}

func (f Face) less(g Face) bool {
	if f[0] != g[0] {
		return f[0] < g[0]
	}
	if f[1] != g[1] {
		return f[1] < g[1]
	}

	return f[2] < g[2]
}

// Insertion records one growth step.
type Insertion struct {
	Node int
	Face Face
	Gain float64
}

// Result is the full outcome of Construct.
type Result struct {
	// Graph is the frozen TMFG.
	Graph *core.Graph

	// Seed is the initial tetrahedron, ascending.
	Seed [4]int

	// Order lists the n−4 insertions in the order they happened.
	Order []Insertion

	// Faces are the 2n−4 triangles of the final graph, sorted.
	Faces []Face
}

// Options configures Build and Construct.
type Options struct {
	// Absolute scores seed and gain by |M[i][j]|.
	Absolute bool

	// SeedCandidates is how many of the strongest nodes the seed search considers.
	SeedCandidates int

	// Labels overrides the matrix labels on the output graph.
	Labels []string

	// Logger receives a Debug entry per build.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithAbsolute scores by absolute correlation.
func WithAbsolute() Option {
	return func(o *Options) { o.Absolute = true }
}

// WithSeedCandidates sets the seed search width; k < 4 fails with ErrInvalidOption.
func WithSeedCandidates(k int) Option {
	return func(o *Options) { o.SeedCandidates = k }
}

// WithLabels sets external node labels on the output graph.
func WithLabels(labels []string) Option {
	return func(o *Options) { o.Labels = labels }
}

// WithLogger sets the debug logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions: signed weighting, 32 seed candidates, discarding logger.
func DefaultOptions() Options {
	return Options{
		SeedCandidates: DefaultSeedCandidates,
		Logger:         logging.Discard(),
	}
}
