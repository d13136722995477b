package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	flowio "github.com/matzehuels/flowtower/pkg/io"
	"github.com/matzehuels/flowtower/pkg/metrics"
	"github.com/matzehuels/flowtower/pkg/observability"
	"github.com/matzehuels/flowtower/pkg/pipeline"
	"github.com/matzehuels/flowtower/pkg/report"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	decomposition string
	jsonPath      string // export the result as JSON
	metricsFile   string // write Prometheus metrics in textfile format
	watch         bool   // re-solve whenever the network file changes
	edges         bool   // also print every edge with flow/capacity
	threshold     int64
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [network-file]",
		Short: "Compute the maximum flow and the terminal→store report",
		Long: `Compute the maximum flow from all terminals to all stores.

The network file may be JSON, TOML or YAML (picked by extension). Without a
file, the built-in example network is solved.

The report lists how many units each terminal supplies to each store. The
default "heuristic" decomposition credits min(terminal→warehouse,
warehouse→store) per warehouse and warns when the totals do not add up;
"paths" decomposes the flow into exact source-to-sink paths instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.decomposition = flagOr(cmd, "decomposition", opts.decomposition, c.config.Decomposition)
			opts.threshold = flagOr(cmd, "threshold", opts.threshold, c.config.Threshold)
			if err := pipeline.ValidateDecomposition(opts.decomposition); err != nil {
				return err
			}
			source := sourceArg(args)
			if opts.watch && source == "" {
				return apperr.New(apperr.ErrCodeInvalidInput, "--watch requires a network file")
			}
			return c.runSolve(cmd.Context(), source, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.decomposition, "decomposition", "d", "", "decomposition method: heuristic (default), paths")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "export the result as JSON to this path")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this path")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-solve whenever the network file changes")
	cmd.Flags().BoolVar(&opts.edges, "edges", false, "also print every edge with flow/capacity")
	cmd.Flags().Int64Var(&opts.threshold, "threshold", 0, "mark edges with capacity at or below this value (default 15)")

	return cmd
}

// runSolve solves once, or keeps re-solving on file changes in watch mode.
func (c *CLI) runSolve(ctx context.Context, source string, opts solveOpts) error {
	var reg *metrics.Registry
	if opts.metricsFile != "" {
		reg = metrics.NewRegistry()
		observability.SetSolverHooks(reg)
		observability.SetPipelineHooks(reg)
		defer observability.Reset()
	}

	once := func(ctx context.Context) error {
		if err := c.solveOnce(ctx, source, opts); err != nil {
			return err
		}
		if reg != nil {
			if err := reg.WriteTextfile(opts.metricsFile); err != nil {
				return err
			}
			c.Logger.Debug("wrote metrics", "file", opts.metricsFile)
		}
		return nil
	}

	if err := once(ctx); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchFile(ctx, source, c.Logger, once)
}

func (c *CLI) solveOnce(ctx context.Context, source string, opts solveOpts) error {
	prog := newProgress(c.Logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Source:        source,
		Decomposition: opts.decomposition,
		Logger:        c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done("Solved "+sourceName(source), "run_id", result.RunID)

	c.printSolution(result, opts)

	if opts.jsonPath != "" {
		if err := flowio.ExportResult(result.Solution(), opts.jsonPath); err != nil {
			return fmt.Errorf("export result: %w", err)
		}
		printFile(c.Out, opts.jsonPath)
	}
	return nil
}

// printSolution writes the report tables for a pipeline result.
func (c *CLI) printSolution(result *pipeline.Result, opts solveOpts) {
	l, res := result.Layout, result.Flow
	tableOpts := report.Options{
		Styled:         true,
		Threshold:      opts.threshold,
		UnboundedLabel: c.config.UnboundedLabel,
	}

	printSuccess(c.Out, "Max flow: %s units", StyleNumber.Render(fmt.Sprint(res.MaxFlow)))
	printStats(c.Out,
		fmt.Sprintf("%d terminals", len(l.Roles.Terminals)),
		fmt.Sprintf("%d warehouses", len(l.Roles.Warehouses)),
		fmt.Sprintf("%d stores", len(l.Roles.Stores)),
		fmt.Sprintf("%d augmenting paths", res.Augmentations),
	)
	fmt.Fprintln(c.Out)

	if len(result.Rows) == 0 {
		printInfo(c.Out, "No flow reaches any store")
	} else {
		printBlock(c.Out, "Flow by terminal and store ("+result.Method+")", report.FlowTable(l, result.Rows, tableOpts))
	}

	if len(result.Ambiguities) > 0 {
		printWarning(c.Out, "%d warehouse(s) split flow ambiguously; try --decomposition paths", len(result.Ambiguities))
		printBlock(c.Out, "", report.AmbiguityTable(l, result.Ambiguities, tableOpts))
	}

	if opts.edges {
		printBlock(c.Out, "Edges", report.EdgeTable(l, res, tableOpts))
		printBlock(c.Out, "Minimum cut", report.CutTable(l, res.MinCut(), tableOpts))
	}
}
