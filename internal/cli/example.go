package cli

import (
	"github.com/spf13/cobra"

	flowio "github.com/matzehuels/flowtower/pkg/io"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// exampleCommand creates the example command.
func (c *CLI) exampleCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the built-in example network",
		Long: `Print the built-in example network: 2 terminals, 4 warehouses and
14 stores with a maximum flow of 115 units.

The output is a valid network file and a good starting point for your own:

  flowtower example -f yaml > network.yaml
  flowtower solve network.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				if err := flowio.ExportPlan(logistics.Example(), output); err != nil {
					return err
				}
				printFile(c.Out, output)
				return nil
			}
			f, err := flowio.ParseFormat(format)
			if err != nil {
				return err
			}
			return flowio.WritePlan(logistics.Example(), c.Out, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(flowio.FormatTOML), "output format: json, toml, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout (format from extension)")

	return cmd
}
