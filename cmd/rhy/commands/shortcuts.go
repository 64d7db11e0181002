package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// addShortcutFlags registers the single-letter root flags kept for muscle memory:
// rhy -s FILE, rhy -r FILE [-T WINDOW | -t] and rhy -a.
func (c *CLI) addShortcutFlags() {
	flags := c.rootCmd.Flags()
	flags.StringP("state", "s", "", "Print how long ago FILE was modified")
	flags.StringP("refresh", "r", "", "Invalidate the cached mirror of FILE")
	flags.BoolP("refresh-all", "a", false, "Invalidate every cached file")
	addSettleFlags(c.rootCmd)

	c.rootCmd.MarkFlagsMutuallyExclusive("state", "refresh", "refresh-all")
}

func (c *CLI) runShortcuts(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	state, _ := flags.GetString("state")
	refresh, _ := flags.GetString("refresh")
	refreshAll, _ := flags.GetBool("refresh-all")

	switch {
	case state != "":
		return c.runState(cmd, state)
	case refresh != "":
		return c.runRefresh(cmd, refresh)
	case refreshAll:
		return c.runRefreshAll(cmd)
	}

	if flags.Changed("timeout") || flags.Changed("timeout-auto") {
		return zerr.New("--timeout and --timeout-auto require --refresh")
	}

	// Display command usage help without returning an error
	return cmd.Help()
}
