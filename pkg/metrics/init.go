package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.SolvesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flowtower_solves_total",
			Help: "Total number of max-flow computations",
		},
	)

	r.AugmentationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "flowtower_augmentations_total",
			Help: "Total number of augmenting paths pushed",
		},
	)

	r.AugmentationsPerSolve = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowtower_augmentations_per_solve",
			Help:    "Number of augmenting paths per max-flow computation",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		},
	)

	r.BottleneckUnits = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowtower_bottleneck_units",
			Help:    "Units pushed per augmenting path",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowtower_solve_duration_seconds",
			Help:    "Max-flow computation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
	)

	r.MaxFlow = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flowtower_max_flow_units",
			Help: "Max-flow value of the most recent computation",
		},
	)

	r.NetworkNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flowtower_network_nodes",
			Help: "Node count of the most recently solved network",
		},
	)

	r.NetworkEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flowtower_network_edges",
			Help: "Edge count of the most recently solved network",
		},
	)
}

func (r *Registry) initPipelineMetrics() {
	r.LoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowtower_loads_total",
			Help: "Total number of network descriptions loaded",
		},
		[]string{"status"},
	)

	r.LoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowtower_load_duration_seconds",
			Help:    "Network load and build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1.0},
		},
	)

	r.RendersTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowtower_renders_total",
			Help: "Total number of diagram renders",
		},
		[]string{"format", "status"},
	)

	r.RenderDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowtower_render_duration_seconds",
			Help:    "Diagram render duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0},
		},
	)
}
