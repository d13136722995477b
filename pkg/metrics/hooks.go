package metrics

import (
	"context"
	"time"

	"github.com/matzehuels/flowtower/pkg/observability"
)

var (
	_ observability.SolverHooks   = (*Registry)(nil)
	_ observability.PipelineHooks = (*Registry)(nil)
)

// OnSolveStart records the size of the network being solved.
func (r *Registry) OnSolveStart(nodes, edges int) {
	r.NetworkNodes.Set(float64(nodes))
	r.NetworkEdges.Set(float64(edges))
}

// OnAugment records one augmenting path.
func (r *Registry) OnAugment(_ []int, bottleneck, _ int64) {
	r.AugmentationsTotal.Inc()
	r.BottleneckUnits.Observe(float64(bottleneck))
}

// OnSolveComplete records the outcome of a solve.
func (r *Registry) OnSolveComplete(maxFlow int64, augmentations int, d time.Duration) {
	r.SolvesTotal.Inc()
	r.MaxFlow.Set(float64(maxFlow))
	r.AugmentationsPerSolve.Observe(float64(augmentations))
	r.SolveDuration.Observe(d.Seconds())
}

func (r *Registry) OnLoadStart(context.Context, string) {}

// OnLoadComplete records a network load.
func (r *Registry) OnLoadComplete(_ context.Context, _ string, _, _ int, d time.Duration, err error) {
	r.LoadsTotal.WithLabelValues(status(err)).Inc()
	r.LoadDuration.Observe(d.Seconds())
}

func (r *Registry) OnRenderStart(context.Context, []string) {}

// OnRenderComplete records a render of one or more formats.
func (r *Registry) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	for _, f := range formats {
		r.RendersTotal.WithLabelValues(f, status(err)).Inc()
	}
	r.RenderDuration.Observe(d.Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
