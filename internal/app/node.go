package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rhy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rhy/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rhy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rhy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/rhy/internal/engine/poller"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.MapperNodeID,
			fs.ProbeNodeID,
			fs.InvalidatorNodeID,
			poller.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	mapper, err := graft.Dep[ports.PathMapper](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.FreshnessProbe](ctx)
	if err != nil {
		return nil, err
	}

	invalidator, err := graft.Dep[ports.CacheInvalidator](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*poller.Poller](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, mapper, probe, invalidator, p, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
