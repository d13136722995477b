package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
	"github.com/matzehuels/flowtower/pkg/observability"
	"github.com/matzehuels/flowtower/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func (r *Runner) Render(ctx context.Context, l *logistics.Layout, res *flow.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := RenderArtifacts(ctx, l, res, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// RenderArtifacts builds the DOT graph once and renders it in every
// format of opts.Formats.
func RenderArtifacts(ctx context.Context, l *logistics.Layout, res *flow.Result, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(l, res, nodelink.Options{
		Threshold:      opts.Threshold,
		UnboundedLabel: opts.UnboundedLabel,
	})

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
