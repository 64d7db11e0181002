package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rhy/internal/core/domain"
)

func (c *CLI) newConfigKeyCmd(key domain.ConfigKey) *cobra.Command {
	return &cobra.Command{
		Use:   key.Flag() + " [PATH]",
		Short: "Print or set " + string(key),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				value, err := c.app.GetConfig(cmd.Context(), string(key))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, value)
				return nil
			}

			cfg, err := c.app.SetConfig(cmd.Context(), string(key), args[0])
			if err != nil {
				return err
			}
			value, _ := cfg.Get(key)
			_, _ = fmt.Fprintf(out, "%s = %s\n", key, value)
			return nil
		},
	}
}
