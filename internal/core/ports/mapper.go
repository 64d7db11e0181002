package ports

import "go.trai.ch/rhy/internal/core/domain"

// PathMapper resolves the mirror of a source file below the cache root.
//
//go:generate go run go.uber.org/mock/mockgen -source=mapper.go -destination=mocks/mock_mapper.go -package=mocks
type PathMapper interface {
	// CacheRoot returns the canonical cache dir joined with the remote path.
	CacheRoot(cfg domain.Config) (string, error)

	// CachePath maps an absolute, canonical source path to its cache path.
	// It returns domain.ErrNotUnderMountRoot when source does not live below the mount path.
	CachePath(cfg domain.Config, source string) (string, error)

	// Canonicalize resolves a user-supplied path to an absolute, symlink-free path.
	Canonicalize(path string) (string, error)
}
