// Package domain contains the core model of rhy: configuration roots, path mapping,
// settle windows and the errors shared by every adapter.
package domain

import "go.trai.ch/zerr"

var (
	// ErrPathNotFound is returned when a source file is missing or cannot be canonicalized.
	ErrPathNotFound = zerr.New("path not found")

	// ErrNotUnderMountRoot is returned when a source path is not a descendant of the mount path.
	ErrNotUnderMountRoot = zerr.New("path is not under mount root")

	// ErrMetadataUnavailable is returned when the modification time of a file cannot be read.
	ErrMetadataUnavailable = zerr.New("file metadata unavailable")

	// ErrClockSkew is returned when a file's modification time lies after the reference time.
	ErrClockSkew = zerr.New("modification time is in the future")

	// ErrCacheRootMissing is returned alongside a zero count when the cache root does not exist.
	// It is a soft signal, not a failure.
	ErrCacheRootMissing = zerr.New("cache root does not exist")

	// ErrInvalidDurationFormat is returned when a settle window does not match <digits><s|m|min|h>.
	ErrInvalidDurationFormat = zerr.New("invalid duration format, expected <number><s|m|min|h>")

	// ErrTimeoutExceeded is returned when the poll ceiling is reached before the file settled.
	ErrTimeoutExceeded = zerr.New("timed out waiting for file to settle")

	// ErrUnboundedPoll is returned when a settle is requested without any ceiling.
	ErrUnboundedPoll = zerr.New("settle requires a max wait or max ticks ceiling")

	// ErrNotAFile is returned when a single-file invalidation targets a directory.
	ErrNotAFile = zerr.New("cache path is a directory")

	// ErrInvalidateFailed is returned when a cache file exists but cannot be removed.
	ErrInvalidateFailed = zerr.New("failed to remove cache file")

	// ErrWalkFailed is returned when the cache tree cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk cache tree")

	// ErrInvalidConfigKey is returned when an unknown configuration key is referenced.
	ErrInvalidConfigKey = zerr.New("invalid config key, expected mount_path, cache_dir or remote_path")

	// ErrEmptyConfigValue is returned when a configuration value is empty.
	ErrEmptyConfigValue = zerr.New("config value must not be empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigDirUnavailable is returned when the user configuration directory cannot be determined.
	ErrConfigDirUnavailable = zerr.New("failed to determine user config directory")
)
