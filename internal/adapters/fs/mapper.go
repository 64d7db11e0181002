package fs

import (
	"path/filepath"

	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathMapper = (*Mapper)(nil)

// Mapper implements the PathMapper interface against the host filesystem.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Canonicalize resolves path to an absolute path with every symlink evaluated.
// The path must exist.
func (m *Mapper) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPathNotFound, err.Error()), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPathNotFound, "failed to canonicalize path"), "path", abs)
	}

	return resolved, nil
}

// CacheRoot returns the canonical cache dir joined with the remote path.
// The cache root itself does not have to exist.
func (m *Mapper) CacheRoot(cfg domain.Config) (string, error) {
	cacheDir, err := m.Canonicalize(cfg.CacheDir)
	if err != nil {
		return "", zerr.With(err, "key", string(domain.KeyCacheDir))
	}
	return cfg.CacheRoot(cacheDir), nil
}

// CachePath maps source to its mirror below the cache root.
func (m *Mapper) CachePath(cfg domain.Config, source string) (string, error) {
	mountRoot, err := m.Canonicalize(cfg.MountPath)
	if err != nil {
		return "", zerr.With(err, "key", string(domain.KeyMountPath))
	}

	cacheRoot, err := m.CacheRoot(cfg)
	if err != nil {
		return "", err
	}

	return domain.MapCachePath(source, mountRoot, cacheRoot)
}
