package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rhy/internal/adapters/logger"
	"go.trai.ch/rhy/internal/core/ports"
)

// NodeID is the unique identifier for the config store Graft node.
const NodeID graft.ID = "adapter.config_store"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			return NewFileStore(path, log), nil
		},
	})
}
