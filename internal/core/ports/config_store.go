package ports

import "go.trai.ch/rhy/internal/core/domain"

// ConfigStore defines the interface for loading and persisting the configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Load returns the stored configuration, creating it with defaults if it does not exist yet.
	Load() (domain.Config, error)

	// Save persists the given configuration.
	Save(cfg domain.Config) error

	// Path returns the location of the backing configuration file.
	Path() string
}
