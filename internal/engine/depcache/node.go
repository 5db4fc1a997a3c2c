package depcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/adapters/mapstore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/engine/graph"
)

// NodeID is the unique identifier for the dependency map cache Graft node.
const NodeID graft.ID = "engine.depcache"

func init() {
	graft.Register(graft.Node[ports.DependencyMapCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{graph.NodeID, mapstore.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyMapCache, error) {
			builder, err := graft.Dep[ports.GraphBuilder](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.DependencyMapStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(builder, store, log), nil
		},
	})
}
