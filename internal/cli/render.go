package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	"github.com/matzehuels/flowtower/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path (multiple)
	formats   []string // svg, png, dot
	threshold int64    // highlight edges with capacity at or below this value
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [network-file]",
		Short: "Draw the solved network as SVG, PNG or DOT",
		Long: `Solve a network and draw it as a layered node-link diagram.

Edges are labeled flow/capacity. Edges whose capacity is at or below the
threshold are drawn red; super-source and super-sink edges are dashed.

Without a file, the built-in example network is drawn.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, c.config.Formats)
			opts.threshold = flagOr(cmd, "threshold", opts.threshold, c.config.Threshold)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := apperr.ValidateThreshold(opts.threshold); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), sourceArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().Int64Var(&opts.threshold, "threshold", 0, "highlight edges with capacity at or below this value, 0 disables (default 15)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, source string, opts renderOpts) error {
	var result *pipeline.Result
	err := spin(ctx, os.Stderr, "Rendering "+sourceName(source)+"...", func() error {
		var err error
		result, err = c.newRunner().Execute(ctx, pipeline.Options{
			Source:         source,
			Formats:        opts.formats,
			Threshold:      opts.threshold,
			UnboundedLabel: c.config.UnboundedLabel,
			Logger:         c.Logger,
		})
		return err
	})
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, source, opts.formats)
	printSuccess(c.Out, "Rendered max flow %s", StyleNumber.Render(fmt.Sprint(result.Flow.MaxFlow)))
	for _, format := range opts.formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(c.Out, path)
	}
	return nil
}

// outputPaths maps each format to its output file.
//
// A single format with an explicit output is written there verbatim.
// Otherwise files are named <base>.<format>, where base is the output with
// any known format extension stripped, or the input file name without its
// extension ("example" for the built-in network).
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input == "" {
		return "example"
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}
