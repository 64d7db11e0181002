package app

import (
	"time"

	"go.trai.ch/rhy/internal/core/domain"
)

// StateReport describes the freshness of a source file.
type StateReport struct {
	Source  string
	ModTime time.Time
	Age     time.Duration
}

// RefreshReport describes the outcome of a refresh.
type RefreshReport struct {
	Source    string
	CachePath string
	// Outcome is set for a one-shot refresh.
	Outcome domain.Outcome
	Age     time.Duration
	// Settle is set when the refresh waited for the source to settle.
	Settle *domain.SettleResult
}

// InfoReport describes the active configuration.
type InfoReport struct {
	ConfigPath string
	Config     domain.Config
	// CacheRoot is empty when the cache dir cannot be resolved.
	CacheRoot string
}
