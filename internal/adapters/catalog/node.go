package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/config"
	"go.trai.ch/dumpfiles/internal/adapters/transform"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

// NodeID is the unique identifier for the asset catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.AssetCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, transform.NodeID},
		Run: func(ctx context.Context) (ports.AssetCatalog, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.TransformRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Manifest, registry), nil
		},
	})
}
