package ports

import "go.trai.ch/rhy/internal/core/domain"

// CacheInvalidator deletes mirror files so the producer regenerates them.
//
//go:generate go run go.uber.org/mock/mockgen -source=invalidator.go -destination=mocks/mock_invalidator.go -package=mocks
type CacheInvalidator interface {
	// InvalidateOne deletes exactly one cache file.
	// A missing file is reported as domain.OutcomeNotFound, not as an error.
	InvalidateOne(cachePath string) (domain.Outcome, error)

	// InvalidateAll deletes every regular file below cacheRoot and leaves directories in place.
	// A missing root returns 0 together with domain.ErrCacheRootMissing.
	InvalidateAll(cacheRoot string) (int, error)
}
