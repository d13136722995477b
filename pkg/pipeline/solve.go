package pipeline

import (
	"context"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// Solve computes the maximum flow of a built network. Augmentations are
// logged at Debug level through the runner's logger.
//
// The solver itself does not observe ctx; cancellation is checked before
// the computation starts.
func (r *Runner) Solve(ctx context.Context, l *logistics.Layout) (*flow.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return flow.Solve(l.Network, &flow.Options{Logger: r.Logger})
}

// Decompose attributes the flow of res to (terminal, store) pairs.
//
// The heuristic method also reports warehouses whose attributed total
// differs from their throughput. The paths method returns the extracted
// source-to-sink paths instead.
func Decompose(res *flow.Result, l *logistics.Layout, method string) ([]flow.ReportRow, []flow.Ambiguity, []flow.FlowPath) {
	if method == DecompositionPaths {
		paths := flow.DecomposePaths(res.State, res.Source, res.Sink)
		return flow.Attribute(paths, l.Roles), nil, paths
	}
	rows, amb := flow.Decompose(res.State, l.Roles)
	return rows, amb, nil
}
