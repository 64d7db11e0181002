// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rhy/internal/adapters/config"
	_ "go.trai.ch/rhy/internal/adapters/fs"
	_ "go.trai.ch/rhy/internal/adapters/logger"
	_ "go.trai.ch/rhy/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/rhy/internal/app"
	_ "go.trai.ch/rhy/internal/engine/poller"
)
