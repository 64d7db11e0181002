package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/ui/style"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the configuration file location and its values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Info(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Config path: %s\n", report.ConfigPath)
			for _, key := range domain.ConfigKeys() {
				value, _ := report.Config.Get(key)
				_, _ = fmt.Fprintf(out, "%s: %s\n", style.Key.Render(string(key)), value)
			}
			cacheRoot := report.CacheRoot
			if cacheRoot == "" {
				cacheRoot = "(unavailable)"
			}
			_, _ = fmt.Fprintf(out, "%s: %s\n", style.Key.Render("cache_root"), cacheRoot)
			return nil
		},
	}
}
