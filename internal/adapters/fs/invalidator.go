package fs

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheInvalidator = (*Invalidator)(nil)

// Invalidator implements the CacheInvalidator interface on a billy filesystem.
type Invalidator struct {
	fs     billy.Filesystem
	walker *Walker
}

// NewInvalidator creates a new Invalidator.
func NewInvalidator(fs billy.Filesystem, walker *Walker) *Invalidator {
	return &Invalidator{fs: fs, walker: walker}
}

// InvalidateOne removes the file at cachePath. It never recurses into directories.
func (inv *Invalidator) InvalidateOne(cachePath string) (domain.Outcome, error) {
	info, err := inv.fs.Lstat(cachePath)
	if errors.Is(err, os.ErrNotExist) {
		return domain.OutcomeNotFound, nil
	}
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidateFailed, err.Error()), "path", cachePath)
	}
	if info.IsDir() {
		return 0, zerr.With(zerr.Wrap(domain.ErrNotAFile, "refusing to remove directory"), "path", cachePath)
	}

	if err := inv.fs.Remove(cachePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.OutcomeNotFound, nil
		}
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidateFailed, err.Error()), "path", cachePath)
	}

	return domain.OutcomeRemoved, nil
}

// InvalidateAll removes every regular file below cacheRoot and returns how many were removed.
// Directories are left in place. The first failing removal stops the wipe.
func (inv *Invalidator) InvalidateAll(cacheRoot string) (int, error) {
	info, err := inv.fs.Lstat(cacheRoot)
	if errors.Is(err, os.ErrNotExist) {
		return 0, zerr.With(zerr.Wrap(domain.ErrCacheRootMissing, "nothing to invalidate"), "path", cacheRoot)
	}
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrWalkFailed, err.Error()), "path", cacheRoot)
	}

	if !info.IsDir() {
		if err := inv.fs.Remove(cacheRoot); err != nil {
			return 0, zerr.With(zerr.Wrap(domain.ErrInvalidateFailed, err.Error()), "path", cacheRoot)
		}
		return 1, nil
	}

	removed := 0
	for path, err := range inv.walker.WalkFiles(cacheRoot) {
		if err != nil {
			return removed, zerr.With(zerr.Wrap(domain.ErrWalkFailed, err.Error()), "path", cacheRoot)
		}
		if err := inv.fs.Remove(path); err != nil {
			return removed, zerr.With(zerr.Wrap(domain.ErrInvalidateFailed, err.Error()), "path", path)
		}
		removed++
	}

	return removed, nil
}
