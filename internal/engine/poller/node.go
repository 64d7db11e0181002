package poller

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rhy/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rhy/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rhy/internal/core/ports"
)

// NodeID is the unique identifier for the poller Graft node.
const NodeID graft.ID = "engine.poller"

func init() {
	graft.Register(graft.Node[*Poller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.MapperNodeID,
			fs.InvalidatorNodeID,
			fs.ProbeNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Poller, error) {
			mapper, err := graft.Dep[ports.PathMapper](ctx)
			if err != nil {
				return nil, err
			}

			invalidator, err := graft.Dep[ports.CacheInvalidator](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.FreshnessProbe](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(mapper, invalidator, probe, log), nil
		},
	})
}
