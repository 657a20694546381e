// Package metrics defines the Prometheus metrics recorded for graph builds.
//
// A Recorder registers its collectors on a caller-supplied registry, so the
// library never touches the global default registry. The CLI exports them
// with WriteTextfile for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "topcorr"

// Failure reasons used as the "reason" label.
const (
	ReasonInvalidMatrix = "invalid_matrix"
	ReasonTooSmall      = "insufficient_nodes"
	ReasonDisconnected  = "disconnected"
	ReasonCanceled      = "canceled"
	ReasonOther         = "other"
)

// Recorder holds the build collectors.
type Recorder struct {
	gatherer prometheus.Gatherer

	BuildDuration *prometheus.HistogramVec
	BuildEdges    *prometheus.GaugeVec
	BuildFailures *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg. A nil reg
// gets a fresh private registry.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{
		gatherer: reg,
		BuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "build",
				Name:      "duration_seconds",
				Help:      "Graph build duration in seconds by method",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"method"},
		),
		BuildEdges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "build",
				Name:      "edges",
				Help:      "Edge count of the last successful build by method",
			},
			[]string{"method"},
		),
		BuildFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "build",
				Name:      "failures_total",
				Help:      "Failed builds by method and reason",
			},
			[]string{"method", "reason"},
		),
	}

	for _, c := range []prometheus.Collector{r.BuildDuration, r.BuildEdges, r.BuildFailures} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// ObserveBuild records a successful build.
func (r *Recorder) ObserveBuild(method string, elapsed time.Duration, edges int) {
	if r == nil {
		return
	}
	r.BuildDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	r.BuildEdges.WithLabelValues(method).Set(float64(edges))
}

// ObserveFailure counts a failed build.
func (r *Recorder) ObserveFailure(method, reason string) {
	if r == nil {
		return
	}
	r.BuildFailures.WithLabelValues(method, reason).Inc()
}

// WriteTextfile writes every metric of the recorder's registry to path in
// the Prometheus text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
