// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/logging"
)

// MinNodes is the smallest matrix a spanning tree is built for.
const MinNodes = 2

// ErrDisconnected indicates that the candidate pairs left after masking cannot
// span every node, so no spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: candidate edges do not span all nodes")

// ErrInvalidOption indicates an unknown method, an out-of-range root, or a
// distance transform that produced NaN.
var ErrInvalidOption = errors.New("prim_kruskal: invalid option")

// MethodPrim selects dense Prim (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal (sort all pairs and union-find).
const MethodKruskal = "kruskal"

// DistanceFunc maps a correlation value to a distance. It must be monotone
// decreasing over [-1, 1] for the tree to favour strong correlations.
type DistanceFunc func(c float64) float64

// EdgeFilter reports whether the pair (u,v), u < v, with correlation c is a
// candidate edge. Returning false masks the pair out.
type EdgeFilter func(u, v int, c float64) bool

// CanonicalDistance is d = sqrt(2(1-c)), clamped at 0 for c marginally above 1.
func CanonicalDistance(c float64) float64 {
	v := 2 * (1 - c)
	if v < 0 {
		return 0
	}

	return math.Sqrt(v)
}

// MSTOptions configures which MST algorithm to run and how pairs are scored.
// Use DefaultOptions() to get a default setup (Kruskal, canonical distance).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root int

	// Distance transforms correlation into distance.
	Distance DistanceFunc

	// Filter masks candidate pairs; nil keeps every pair.
	Filter EdgeFilter

	// Labels overrides the matrix labels on the output graph.
	Labels []string

	// Logger receives a Debug entry per build.
	Logger logrus.FieldLogger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the starting node for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// WithDistance replaces the correlation-to-distance transform.
func WithDistance(fn DistanceFunc) Option {
	return func(o *MSTOptions) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithEdgeFilter masks candidate pairs.
func WithEdgeFilter(fn EdgeFilter) Option {
	return func(o *MSTOptions) { o.Filter = fn }
}

// WithLabels sets external node labels on the output graph.
func WithLabels(labels []string) Option {
	return func(o *MSTOptions) { o.Labels = labels }
}

// WithLogger sets the debug logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *MSTOptions) { o.Logger = l }
}

// DefaultOptions returns Kruskal with the canonical distance, root 0,
// no mask and a discarding logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		Root:     0,
		Distance: CanonicalDistance,
		Logger:   logging.Discard(),
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = logging.OrDiscard(o.Logger)

	return o
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: Kruskal(src, opts...)
//	– MethodPrim:    Prim(src, opts...)
//	– otherwise:     ErrInvalidOption
func Compute(src corr.Source, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(src, opts...)
	case MethodPrim:
		return Prim(src, opts...)
	default:
		return nil, fmt.Errorf("%w: method %q", ErrInvalidOption, o.Method)
	}
}

// TreeDistance returns Σ dist(w) over the edges of g; with CanonicalDistance
// this is the quantity an MST minimizes.
func TreeDistance(g *core.Graph, dist DistanceFunc) float64 {
	if dist == nil {
		dist = CanonicalDistance
	}
	var total float64
	for _, e := range g.Edges() {
		total += dist(e.Weight)
	}

	return total
}

// pairLess orders unordered pairs lexicographically by (min, max).
func pairLess(a1, b1, a2, b2 int) bool {
	if a1 > b1 {
		a1, b1 = b1, a1
	}
	if a2 > b2 {
		a2, b2 = b2, a2
	}
	if a1 != a2 {
		return a1 < a2
	}

	return b1 < b2
}
