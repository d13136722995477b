package pipeline

import (
	"context"
	"time"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	flowio "github.com/matzehuels/flowtower/pkg/io"
	"github.com/matzehuels/flowtower/pkg/logistics"
	"github.com/matzehuels/flowtower/pkg/observability"
)

// exampleSource names the built-in network in hooks and logs.
const exampleSource = "example"

// Load reads and builds the network at path. An empty path loads the
// built-in example network.
//
// Description errors keep the code assigned by the io package; errors from
// building the network are reported as INVALID_NETWORK.
func (r *Runner) Load(ctx context.Context, path string) (*logistics.Layout, error) {
	source := path
	if source == "" {
		source = exampleSource
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	l, err := load(ctx, path)

	nodes, edges := 0, 0
	if l != nil {
		nodes, edges = l.Network.NodeCount(), l.Network.EdgeCount()
	}
	hooks.OnLoadComplete(ctx, source, nodes, edges, time.Since(start), err)
	return l, err
}

func load(ctx context.Context, path string) (*logistics.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := logistics.Example()
	if path != "" {
		var err error
		if plan, err = flowio.ImportPlan(path); err != nil {
			return nil, err
		}
	}

	l, err := logistics.Build(plan)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidNetwork, err, "network %q", plan.Name)
	}
	return l, nil
}
