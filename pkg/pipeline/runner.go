package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Runner executes pipeline stages.
//
// The Runner is stateless except for its logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → solve → decompose → render pipeline.
// The render stage only runs when opts.Formats is non-empty.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Method:    opts.Decomposition,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	l, err := r.Load(ctx, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Layout = l
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = l.Network.NodeCount()
	result.Stats.EdgeCount = l.Network.EdgeCount()

	r.Logger.Info("loaded network",
		"name", l.Plan.Name,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Solve
	solveStart := time.Now()
	res, err := r.Solve(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Flow = res
	result.SolvedAt = time.Now().UTC()
	result.Stats.SolveTime = time.Since(solveStart)

	r.Logger.Info("computed max flow",
		"max_flow", res.MaxFlow,
		"augmentations", res.Augmentations,
		"duration", result.Stats.SolveTime)

	// Stage 3: Decompose
	decomposeStart := time.Now()
	result.Rows, result.Ambiguities, result.Paths = Decompose(res, l, opts.Decomposition)
	result.Stats.DecomposeTime = time.Since(decomposeStart)

	r.Logger.Debug("decomposed flow",
		"method", opts.Decomposition,
		"rows", len(result.Rows),
		"duration", result.Stats.DecomposeTime)
	for _, a := range result.Ambiguities {
		r.Logger.Warn("ambiguous attribution",
			"warehouse", l.Label(a.Warehouse),
			"attributed", a.Attributed,
			"throughput", a.Throughput)
	}

	// Stage 4: Render
	if len(opts.Formats) == 0 {
		return result, nil
	}
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}
