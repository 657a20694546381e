package filter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topcorr/bfs"
	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/metrics"
	"github.com/katalvlaran/topcorr/planar"
	"github.com/katalvlaran/topcorr/pmfg"
	"github.com/katalvlaran/topcorr/prim_kruskal"
	"github.com/katalvlaran/topcorr/tmfg"
)

// Build runs one method on src.
//
// Steps:
//  1. Return ctx.Err() if ctx is already done.
//  2. Dispatch to the constructor with the translated options.
//  3. Optionally verify the result (WithVerify).
//  4. Record duration and edges, or the failure reason (WithRecorder).
func Build(ctx context.Context, src corr.Source, method Method, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	g, err := build(ctx, src, method, o)
	if err != nil {
		o.Recorder.ObserveFailure(string(method), reason(err))
		o.Logger.WithField("method", method).WithError(err).Debug("build failed")
		return nil, err
	}

	return g, nil
}

func build(ctx context.Context, src corr.Source, method Method, o Options) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("filter.Build(%s): %w", method, err)
	}

	start := time.Now()
	var (
		g   *core.Graph
		err error
	)
	switch method {
	case MST:
		mstOpts := append([]prim_kruskal.Option{
			prim_kruskal.WithLabels(o.Labels),
			prim_kruskal.WithLogger(o.Logger),
		}, o.MST...)
		g, err = prim_kruskal.Compute(src, mstOpts...)
	case PMFG:
		g, err = pmfg.Build(src, pmfg.WithLabels(o.Labels), pmfg.WithLogger(o.Logger))
	case TMFG:
		tOpts := []tmfg.Option{tmfg.WithLabels(o.Labels), tmfg.WithLogger(o.Logger)}
		if o.Absolute {
			tOpts = append(tOpts, tmfg.WithAbsolute())
		}
		if o.SeedCandidates > 0 {
			tOpts = append(tOpts, tmfg.WithSeedCandidates(o.SeedCandidates))
		}
		g, err = tmfg.Build(src, tOpts...)
	case KNN:
		g, err = BuildKNN(src, o.K, WithLabels(o.Labels), WithLogger(o.Logger))
	default:
		return nil, fmt.Errorf("filter.Build: %w: %q", ErrUnknownMethod, method)
	}
	if err != nil {
		return nil, fmt.Errorf("filter.Build(%s): %w", method, err)
	}

	if o.Verify {
		if err = verify(method, g); err != nil {
			return nil, fmt.Errorf("filter.Build(%s): %w", method, err)
		}
	}
	o.Recorder.ObserveBuild(string(method), time.Since(start), g.EdgeCount())

	return g, nil
}

// BuildAll runs every method concurrently on a shared, validated copy of
// src. With no methods it runs MST, PMFG and TMFG. The first failure
// cancels the builds that have not started yet and is returned alone.
func BuildAll(ctx context.Context, src corr.Source, methods []Method, opts ...Option) (map[Method]*core.Graph, error) {
	if len(methods) == 0 {
		methods = []Method{MST, PMFG, TMFG}
	}
	m, err := corr.Validate(src, 1)
	if err != nil {
		return nil, fmt.Errorf("filter.BuildAll: %w", err)
	}

	var mu sync.Mutex
	out := make(map[Method]*core.Graph, len(methods))
	eg, gctx := errgroup.WithContext(ctx)
	for _, method := range methods {
		method := method
		eg.Go(func() error {
			g, err := Build(gctx, m, method, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			out[method] = g
			mu.Unlock()
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// verify checks the structural guarantee of each method.
func verify(method Method, g *core.Graph) error {
	n := g.Order()
	switch method {
	case MST:
		missing, err := bfs.Unreachable(g)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: mst leaves nodes %v unreachable from node 0", ErrPostcondition, missing)
		}
		if g.EdgeCount() != n-1 {
			return fmt.Errorf("%w: mst has %d edges, want %d", ErrPostcondition, g.EdgeCount(), n-1)
		}
	case PMFG, TMFG:
		if g.EdgeCount() != planar.MaxEdges(n) {
			return fmt.Errorf("%w: %d edges, want %d", ErrPostcondition, g.EdgeCount(), planar.MaxEdges(n))
		}
		if !planar.Check(g) {
			return fmt.Errorf("%w: graph is not planar", ErrPostcondition)
		}
		missing, err := bfs.Unreachable(g)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: nodes %v unreachable from node 0", ErrPostcondition, missing)
		}
	case KNN:
		for v := 0; v < n; v++ {
			d, err := g.Degree(v)
			if err != nil {
				return err
			}
			if d == 0 {
				return fmt.Errorf("%w: node %d is isolated", ErrPostcondition, v)
			}
		}
	}

	return nil
}

// reason maps an error to the failure label of metrics.Recorder.
func reason(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ReasonCanceled
	case errors.Is(err, corr.ErrInsufficientNodes):
		return metrics.ReasonTooSmall
	case errors.Is(err, corr.ErrInvalidMatrix):
		return metrics.ReasonInvalidMatrix
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return metrics.ReasonDisconnected
	}

	return metrics.ReasonOther
}
