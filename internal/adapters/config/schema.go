package config

import "go.trai.ch/rhy/internal/core/domain"

// Rhyfile represents the structure of the config.yaml file.
type Rhyfile struct {
	MountPath  string `yaml:"mount_path"`
	CacheDir   string `yaml:"cache_dir"`
	RemotePath string `yaml:"remote_path"`
}

func fromDomain(cfg domain.Config) Rhyfile {
	return Rhyfile{
		MountPath:  cfg.MountPath,
		CacheDir:   cfg.CacheDir,
		RemotePath: cfg.RemotePath,
	}
}

func (f Rhyfile) toDomain() domain.Config {
	return domain.Config{
		MountPath:  f.MountPath,
		CacheDir:   f.CacheDir,
		RemotePath: f.RemotePath,
	}
}
