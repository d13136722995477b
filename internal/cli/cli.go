// Package cli implements the flowtower command-line interface.
//
// # Commands
//
//   - solve: compute the maximum flow and print the terminal→store report
//   - render: draw the solved network as SVG, PNG or DOT
//   - inspect: browse edges interactively
//   - validate: check a network description without solving it
//   - example: print the built-in example network
//
// Every command that takes a network file falls back to the built-in
// example when no file is given.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one record per augmenting path. The logger is also attached to
// the command context (see loggerFromContext).
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowtower/pkg/buildinfo"
	"github.com/matzehuels/flowtower/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "flowtower"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives reports and tables. Logs go to the logger's writer.
	Out io.Writer

	config     Config
	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Flowtower computes maximum flows through logistics networks",
		Long:              `Flowtower routes goods from terminals through warehouses to stores, computing the maximum deliverable flow with the Edmonds–Karp method and reporting how much each terminal supplies to each store.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flowtower/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Argument Helpers
// =============================================================================

// sourceArg returns the network file argument, or "" for the built-in example.
func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// sourceName is the display name of a network source.
func sourceName(source string) string {
	if source == "" {
		return "example network"
	}
	return source
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields fallback.
func parseFormats(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
