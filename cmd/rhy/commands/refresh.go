package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/rhy/internal/app"
	"go.trai.ch/rhy/internal/core/domain"
)

func (c *CLI) newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh FILE",
		Short: "Invalidate the cached mirror of FILE and report its age",
		Long: "Invalidate the cached mirror of FILE and report how long ago FILE was modified.\n" +
			"With --timeout the mirror is invalidated repeatedly until FILE was modified within the window.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRefresh(cmd, args[0])
		},
	}
	addSettleFlags(cmd)
	return cmd
}

func addSettleFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("timeout", "T", "", "Wait until FILE was modified within this window, e.g. 20s, 5m, 5 min, 1h")
	cmd.Flags().BoolP("timeout-auto", "t", false, "Shorthand for --timeout "+domain.AutoWindow)
	cmd.Flags().Duration("max-wait", domain.DefaultMaxWait, "Give up waiting after this long")
	cmd.Flags().Duration("interval", domain.DefaultPollInterval, "Delay between two checks while waiting")
	cmd.Flags().BoolP("verbose", "v", false, "Log each step")
	cmd.MarkFlagsMutuallyExclusive("timeout", "timeout-auto")
}

func refreshOptions(cmd *cobra.Command) app.RefreshOptions {
	flags := cmd.Flags()
	window, _ := flags.GetString("timeout")
	auto, _ := flags.GetBool("timeout-auto")
	maxWait, _ := flags.GetDuration("max-wait")
	interval, _ := flags.GetDuration("interval")
	verbose, _ := flags.GetBool("verbose")

	if auto {
		window = domain.AutoWindow
	}

	return app.RefreshOptions{
		Verbose:  verbose,
		Window:   window,
		Interval: interval,
		MaxWait:  maxWait,
	}
}

func (c *CLI) runRefresh(cmd *cobra.Command, file string) error {
	opts := refreshOptions(cmd)
	out := cmd.OutOrStdout()

	if opts.Window != "" {
		_, _ = fmt.Fprintf(out, "Detecting change of %s within past %s\n", file, opts.Window)
	}

	report, err := c.app.Refresh(cmd.Context(), file, opts)
	if err != nil {
		return err
	}

	if report.Settle == nil {
		switch report.Outcome {
		case domain.OutcomeRemoved:
			_, _ = fmt.Fprintf(out, "Cache removed: %s\n", report.CachePath)
		default:
			_, _ = fmt.Fprintf(out, "Cache not exists: %s\n", report.CachePath)
		}
	}

	_, _ = fmt.Fprintf(out, "Updated before %s\n", formatAge(report.Age))
	return nil
}

func formatAge(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
