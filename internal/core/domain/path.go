package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// MapCachePath maps an absolute source path to its mirror below cacheRoot.
//
// The mapping is structural: it climbs from source through its parents until a
// parent equals mountRoot, collecting every name on the way, and re-roots the
// collected names under cacheRoot. Climbing is bounded by the number of
// segments in source, so a path outside mountRoot (or mountRoot itself) yields
// ErrNotUnderMountRoot instead of walking past the filesystem root.
func MapCachePath(source, mountRoot, cacheRoot string) (string, error) {
	source = filepath.Clean(source)
	mountRoot = filepath.Clean(mountRoot)

	if !filepath.IsAbs(source) || !filepath.IsAbs(mountRoot) {
		return "", notUnderMountRoot(source, mountRoot)
	}

	maxSteps := strings.Count(source, string(filepath.Separator)) + 1
	segments := make([]string, 0, maxSteps)
	current := source

	for range maxSteps {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		segments = append(segments, filepath.Base(current))
		if parent == mountRoot {
			slices.Reverse(segments)
			return filepath.Join(append([]string{cacheRoot}, segments...)...), nil
		}
		current = parent
	}

	return "", notUnderMountRoot(source, mountRoot)
}

func notUnderMountRoot(source, mountRoot string) error {
	err := zerr.Wrap(ErrNotUnderMountRoot, "cannot map source to cache")
	err = zerr.With(err, "path", source)
	return zerr.With(err, "mount_path", mountRoot)
}
