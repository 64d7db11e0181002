package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// ConfigKey names one of the three configuration roots.
type ConfigKey string

const (
	// KeyMountPath is the logical root of tracked source files.
	KeyMountPath ConfigKey = "mount_path"
	// KeyCacheDir is the physical root of the mirror storage.
	KeyCacheDir ConfigKey = "cache_dir"
	// KeyRemotePath is the segment appended under the cache dir to form the cache root.
	KeyRemotePath ConfigKey = "remote_path"
)

// Default configuration values. Earlier releases shipped these swapped
// between mount_path and cache_dir; this triple is the one written on first run.
const (
	DefaultMountPath  = "/remote"
	DefaultCacheDir   = "/data/rcache"
	DefaultRemotePath = "vfs/"
)

// ConfigKeys returns all configuration keys in file order.
func ConfigKeys() []ConfigKey {
	return []ConfigKey{KeyMountPath, KeyCacheDir, KeyRemotePath}
}

// ParseConfigKey converts a raw key into a ConfigKey.
// Dashes are accepted in place of underscores so CLI names map directly.
func ParseConfigKey(raw string) (ConfigKey, error) {
	for _, k := range ConfigKeys() {
		if raw == string(k) || raw == k.Flag() {
			return k, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidConfigKey, "unknown key"), "key", raw)
}

// Flag returns the dashed form of the key, as used by CLI subcommands.
func (k ConfigKey) Flag() string {
	switch k {
	case KeyMountPath:
		return "mount-path"
	case KeyCacheDir:
		return "cache-dir"
	case KeyRemotePath:
		return "remote-path"
	default:
		return string(k)
	}
}

// Config is an immutable snapshot of the three roots, loaded once per invocation.
type Config struct {
	MountPath  string
	CacheDir   string
	RemotePath string
}

// DefaultConfig returns the default configuration triple.
func DefaultConfig() Config {
	return Config{
		MountPath:  DefaultMountPath,
		CacheDir:   DefaultCacheDir,
		RemotePath: DefaultRemotePath,
	}
}

// WithDefaults returns a copy where every empty field is replaced by its default.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.MountPath == "" {
		c.MountPath = d.MountPath
	}
	if c.CacheDir == "" {
		c.CacheDir = d.CacheDir
	}
	if c.RemotePath == "" {
		c.RemotePath = d.RemotePath
	}
	return c
}

// Get returns the value stored under key.
func (c Config) Get(key ConfigKey) (string, error) {
	switch key {
	case KeyMountPath:
		return c.MountPath, nil
	case KeyCacheDir:
		return c.CacheDir, nil
	case KeyRemotePath:
		return c.RemotePath, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidConfigKey, "unknown key"), "key", string(key))
	}
}

// With returns a copy of the config with key set to value.
func (c Config) With(key ConfigKey, value string) (Config, error) {
	if value == "" {
		return c, zerr.With(zerr.Wrap(ErrEmptyConfigValue, "refusing to set empty value"), "key", string(key))
	}
	switch key {
	case KeyMountPath:
		c.MountPath = value
	case KeyCacheDir:
		c.CacheDir = value
	case KeyRemotePath:
		c.RemotePath = value
	default:
		return c, zerr.With(zerr.Wrap(ErrInvalidConfigKey, "unknown key"), "key", string(key))
	}
	return c, nil
}

// Validate checks that all three roots are set.
func (c Config) Validate() error {
	for _, k := range ConfigKeys() {
		v, _ := c.Get(k)
		if v == "" {
			return zerr.With(zerr.Wrap(ErrEmptyConfigValue, "incomplete configuration"), "key", string(k))
		}
	}
	return nil
}

// CacheRoot joins the canonical cache dir with the remote path.
// The remote path is always appended below the cache dir, even when it starts with a separator.
func (c Config) CacheRoot(canonicalCacheDir string) string {
	return filepath.Join(canonicalCacheDir, c.RemotePath)
}
