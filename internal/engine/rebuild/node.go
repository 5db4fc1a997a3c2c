package rebuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/logger"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/adapters/materializer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/engine/depcache"
	"go.trai.ch/dumpfiles/internal/engine/impact"
)

// NodeID is the unique identifier for the rebuild driver Graft node.
const NodeID graft.ID = "engine.rebuild"

func init() {
	graft.Register(graft.Node[ports.RebuildDriver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{depcache.NodeID, impact.NodeID, materializer.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RebuildDriver, error) {
			cache, err := graft.Dep[ports.DependencyMapCache](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ImpactResolver](ctx)
			if err != nil {
				return nil, err
			}

			mat, err := graft.Dep[ports.Materializer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cache, resolver, mat, log), nil
		},
	})
}
