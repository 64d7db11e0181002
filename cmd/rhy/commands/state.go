package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state FILE",
		Short: "Print how long ago FILE was modified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runState(cmd, args[0])
		},
	}
}

func (c *CLI) runState(cmd *cobra.Command, file string) error {
	report, err := c.app.State(cmd.Context(), file)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated before %s\n", formatAge(report.Age))
	return nil
}
