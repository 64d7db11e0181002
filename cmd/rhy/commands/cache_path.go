package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-path FILE",
		Short: "Print the cached mirror path of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.CachePath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
