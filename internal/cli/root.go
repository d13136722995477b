package cli

import (
	"github.com/spf13/cobra"
)

// preRun loads the config file and attaches the logger to the command
// context before any subcommand runs.
//
// Config values become the defaults of the threshold, decomposition,
// format and unbounded-label options; flags set on the command line still
// win (see flagOr).
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config",
		"threshold", cfg.Threshold,
		"decomposition", cfg.Decomposition,
		"formats", cfg.Formats)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// flagOr returns value when the named flag was set on the command line,
// and fallback otherwise.
func flagOr[T any](cmd *cobra.Command, name string, value, fallback T) T {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
