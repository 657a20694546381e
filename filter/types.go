package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/logging"
	"github.com/katalvlaran/topcorr/metrics"
	"github.com/katalvlaran/topcorr/prim_kruskal"
)

// Method names a graph filter.
type Method string

// Supported methods.
const (
	MST  Method = "mst"
	PMFG Method = "pmfg"
	TMFG Method = "tmfg"
	KNN  Method = "knn"
)

// Sentinel errors for the facade.
var (
	// ErrUnknownMethod indicates a method name outside Methods().
	ErrUnknownMethod = errors.New("filter: unknown method")

	// ErrInvalidK indicates k outside [1, n-1] for KNN.
	ErrInvalidK = errors.New("filter: k out of range")

	// ErrPostcondition indicates a built graph failed verification.
	ErrPostcondition = errors.New("filter: result violates its structural guarantee")
)

// Methods returns every supported method in a stable order.
func Methods() []Method { return []Method{MST, PMFG, TMFG, KNN} }

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// DefaultK is the neighbour count KNN uses when none is set.
const DefaultK = 3

// Options configures Build and BuildAll.
type Options struct {
	Labels         []string
	Logger         logrus.FieldLogger
	Recorder       *metrics.Recorder
	Verify         bool
	K              int
	Absolute       bool
	SeedCandidates int
	MST            []prim_kruskal.Option
}

// Option configures Options.
type Option func(*Options)

// WithLabels sets node labels on every output graph.
func WithLabels(labels []string) Option { return func(o *Options) { o.Labels = labels } }

// WithLogger sets the logger passed down to every constructor.
func WithLogger(l logrus.FieldLogger) Option { return func(o *Options) { o.Logger = l } }

// WithRecorder records durations, edge counts and failures.
func WithRecorder(r *metrics.Recorder) Option { return func(o *Options) { o.Recorder = r } }

// WithVerify re-checks each result's structural guarantee.
func WithVerify() Option { return func(o *Options) { o.Verify = true } }

// WithK sets the neighbour count for KNN.
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithAbsolute makes TMFG score by |M[i][j]|.
func WithAbsolute() Option { return func(o *Options) { o.Absolute = true } }

// WithSeedCandidates sets the TMFG seed search width.
func WithSeedCandidates(k int) Option { return func(o *Options) { o.SeedCandidates = k } }

// WithMSTOptions appends options for prim_kruskal.Compute.
func WithMSTOptions(opts ...prim_kruskal.Option) Option {
	return func(o *Options) { o.MST = append(o.MST, opts...) }
}

func buildOptions(opts []Option) Options {
	o := Options{K: DefaultK, Logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = logging.OrDiscard(o.Logger)

	return o
}
