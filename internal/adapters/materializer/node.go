package materializer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/catalog"
	"go.trai.ch/dumpfiles/internal/adapters/config"
	"go.trai.ch/dumpfiles/internal/adapters/logger"
	"go.trai.ch/dumpfiles/internal/adapters/transform"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

// NodeID is the unique identifier for the materializer Graft node.
const NodeID graft.ID = "adapter.materializer"

func init() {
	graft.Register(graft.Node[ports.Materializer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, catalog.NodeID, transform.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Materializer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			cat, err := graft.Dep[ports.AssetCatalog](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.TransformRegistry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, cat, registry, log), nil
		},
	})
}
