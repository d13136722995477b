// Package metrics exposes solver and pipeline activity as Prometheus metrics.
//
// A [Registry] implements both observability.SolverHooks and
// observability.PipelineHooks, so wiring it up is a matter of registering it:
//
//	reg := metrics.NewRegistry()
//	observability.SetSolverHooks(reg)
//	observability.SetPipelineHooks(reg)
//	// ... solve ...
//	reg.WriteTextfile("flowtower.prom")
//
// Short-lived CLI runs have no scrape endpoint, so metrics are written in the
// node-exporter textfile format instead.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Solver Metrics
	SolvesTotal           prometheus.Counter
	AugmentationsTotal    prometheus.Counter
	AugmentationsPerSolve prometheus.Histogram
	BottleneckUnits       prometheus.Histogram
	SolveDuration         prometheus.Histogram
	MaxFlow               prometheus.Gauge
	NetworkNodes          prometheus.Gauge
	NetworkEdges          prometheus.Gauge

	// Pipeline Metrics
	LoadsTotal     *prometheus.CounterVec
	LoadDuration   prometheus.Histogram
	RendersTotal   *prometheus.CounterVec
	RenderDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initSolverMetrics()
	r.initPipelineMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
