package ports

import "time"

// FreshnessProbe reads file modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type FreshnessProbe interface {
	// ModTime returns the last modification time of the file at path.
	ModTime(path string) (time.Time, error)

	// Age returns now minus the last modification time of the file at path.
	// A modification time after now is reported as domain.ErrClockSkew.
	Age(path string, now time.Time) (time.Duration, error)
}
