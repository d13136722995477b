package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate network-file",
		Short: "Check a network description without solving it",
		Long: `Check that a network description decodes and builds into a valid network.

Checks include unknown or duplicate sites, routes that skip a layer,
non-positive capacities and duplicate routes. The network is not solved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runValidate(ctx context.Context, path string) error {
	l, err := c.newRunner().Load(ctx, path)
	if err != nil {
		printError(c.Out, "%s is invalid: %s", path, apperr.UserMessage(err))
		return err
	}

	printSuccess(c.Out, "%s is valid", path)
	printKeyValue(c.Out, "Name", l.Plan.Name)
	printKeyValue(c.Out, "Terminals", fmt.Sprint(len(l.Roles.Terminals)))
	printKeyValue(c.Out, "Warehouses", fmt.Sprint(len(l.Roles.Warehouses)))
	printKeyValue(c.Out, "Stores", fmt.Sprint(len(l.Roles.Stores)))
	printKeyValue(c.Out, "Routes", fmt.Sprint(len(l.Plan.Routes)))
	printKeyValue(c.Out, "Nodes", fmt.Sprint(l.Network.NodeCount()))
	return nil
}
