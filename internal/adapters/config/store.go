// Package config provides the YAML configuration store for rhy.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigStore = (*FileStore)(nil)

// FileStore implements ports.ConfigStore using a YAML file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger ports.Logger
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, log ports.Logger) *FileStore {
	return &FileStore{path: path, logger: log}
}

// DefaultPath returns <user config dir>/rhy/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(domain.ErrConfigDirUnavailable, err.Error())
	}
	return domain.DefaultConfigPath(dir), nil
}

// Path returns the location of the backing configuration file.
func (s *FileStore) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// SetPath points the store at a different file.
func (s *FileStore) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Load reads the configuration. A missing file is created with the defaults,
// and empty keys in an existing file fall back to their defaults.
func (s *FileStore) Load() (domain.Config, error) {
	path := s.Path()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, os.ErrNotExist) {
		cfg := domain.DefaultConfig()
		if err := s.Save(cfg); err != nil {
			return domain.Config{}, err
		}
		s.logger.Debug("created default configuration at " + path)
		return cfg, nil
	}
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Rhyfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return file.toDomain().WithDefaults(), nil
}

// Save writes cfg to the backing file, creating parent directories as needed.
func (s *FileStore) Save(cfg domain.Config) error {
	path := s.Path()

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(fromDomain(cfg))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	return nil
}
