package mapstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/config"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

// NodeID is the unique identifier for the dependency map store Graft node.
const NodeID graft.ID = "adapter.mapstore"

func init() {
	graft.Register(graft.Node[ports.DependencyMapStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DependencyMapStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.CacheFile()), nil
		},
	})
}
