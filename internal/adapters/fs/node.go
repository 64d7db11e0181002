package fs

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/grindlemire/graft"
	"go.trai.ch/rhy/internal/core/ports"
)

// Graft node identifiers for the filesystem adapters.
const (
	FilesystemNodeID  graft.ID = "adapter.fs.filesystem"
	WalkerNodeID      graft.ID = "adapter.fs.walker"
	MapperNodeID      graft.ID = "adapter.fs.mapper"
	ProbeNodeID       graft.ID = "adapter.fs.probe"
	InvalidatorNodeID graft.ID = "adapter.fs.invalidator"
)

func init() {
	graft.Register(graft.Node[billy.Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (billy.Filesystem, error) {
			return NewLocal(), nil
		},
	})

	// Walker Node (Concrete implementation needed by Invalidator)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			fsys, err := graft.Dep[billy.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.PathMapper]{
		ID:        MapperNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathMapper, error) {
			return NewMapper(), nil
		},
	})

	graft.Register(graft.Node[ports.FreshnessProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.FreshnessProbe, error) {
			fsys, err := graft.Dep[billy.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.CacheInvalidator]{
		ID:        InvalidatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID, WalkerNodeID},
		Run: func(ctx context.Context) (ports.CacheInvalidator, error) {
			fsys, err := graft.Dep[billy.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvalidator(fsys, walker), nil
		},
	})
}
