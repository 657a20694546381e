package pmfg

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/logging"
	"github.com/katalvlaran/topcorr/planar"
)

// MinNodes is the smallest matrix a PMFG is built for.
const MinNodes = 4

// ErrNotMaximal indicates the Checker stopped accepting edges before 3n−6
// were found. It signals a faulty Checker; planar.Tracker never causes it.
var ErrNotMaximal = errors.New("pmfg: planar filter ended below 3n-6 edges")

// Checker is the planarity capability PMFG needs. A Checker that also has
// a Full() bool method is asked once the last edge is accepted, and Build
// fails with ErrNotMaximal if it reports false.
type Checker interface {
	// CanAdd reports whether (u,v) can be added while staying planar.
	CanAdd(u, v int) bool

	// Commit records (u,v) permanently.
	Commit(u, v int) error
}

// CheckerFactory returns a fresh Checker for a graph on n nodes.
type CheckerFactory func(n int) Checker

// Options configures Build.
type Options struct {
	// NewChecker creates the planarity checker for one build.
	NewChecker CheckerFactory

	// Labels overrides the matrix labels on the output graph.
	Labels []string

	// Logger receives a Debug entry per build.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithChecker replaces the default planar.Tracker.
func WithChecker(f CheckerFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.NewChecker = f
		}
	}
}

// WithLabels sets external node labels on the output graph.
func WithLabels(labels []string) Option {
	return func(o *Options) { o.Labels = labels }
}

// WithLogger sets the debug logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions uses planar.Tracker and a discarding logger.
func DefaultOptions() Options {
	return Options{
		NewChecker: func(n int) Checker { return planar.NewTracker(n) },
		Logger:     logging.Discard(),
	}
}
