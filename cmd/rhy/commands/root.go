// Package commands implements the CLI commands for rhy.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rhy/internal/app"
	"go.trai.ch/rhy/internal/build"
	"go.trai.ch/rhy/internal/core/domain"
)

// CLI represents the command line interface for rhy.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(s app.Settings) error
	CachePath(ctx context.Context, source string) (string, error)
	State(ctx context.Context, source string) (app.StateReport, error)
	Refresh(ctx context.Context, source string, opts app.RefreshOptions) (app.RefreshReport, error)
	RefreshAll(ctx context.Context) (int, error)
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) (domain.Config, error)
	Info(ctx context.Context) (app.InfoReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rhy",
		Short:         "A tool for tracking file state and invalidating cached mirrors",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Shortcut flags go first so -v stays verbose instead of version.
	c.addShortcutFlags()

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default <user config dir>/rhy/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().String("progress", "plain", "Settle progress: plain, tape or none")

	rootCmd.PersistentPreRunE = c.configure
	rootCmd.RunE = c.runShortcuts

	rootCmd.AddCommand(c.newStateCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newRefreshAllCmd())
	rootCmd.AddCommand(c.newCachePathCmd())
	for _, key := range domain.ConfigKeys() {
		rootCmd.AddCommand(c.newConfigKeyCmd(key))
	}
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")
	progress, _ := flags.GetString("progress")

	return c.app.Configure(app.Settings{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Progress:   progress,
	})
}
