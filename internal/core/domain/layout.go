package domain

import (
	"path/filepath"
	"time"
)

const (
	// AppName is the name of the application and of its config directory.
	AppName = "rhy"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DefaultPollInterval is the delay between two settle ticks.
	DefaultPollInterval = 200 * time.Millisecond

	// DefaultMaxWait bounds a settle when the caller gives no ceiling.
	DefaultMaxWait = 30 * time.Minute

	// AutoWindow is the settle window used by the --timeout-auto flag.
	AutoWindow = "20s"
)

// DefaultConfigPath returns the config file location below the given user config directory.
// It joins <dir>, rhy and config.yaml.
func DefaultConfigPath(userConfigDir string) string {
	return filepath.Join(userConfigDir, AppName, ConfigFileName)
}
