package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRefreshAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-all",
		Short: "Invalidate every cached file, keeping the directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runRefreshAll(cmd)
		},
	}
}

func (c *CLI) runRefreshAll(cmd *cobra.Command) error {
	n, err := c.app.RefreshAll(cmd.Context())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cache removed: %d files\n", n)
	return nil
}
