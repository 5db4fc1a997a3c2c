package graph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/catalog"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/adapters/materializer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/core/ports"
)

// NodeID is the unique identifier for the graph builder Graft node.
const NodeID graft.ID = "engine.graph"

func init() {
	graft.Register(graft.Node[ports.GraphBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{catalog.NodeID, materializer.NodeID},
		Run: func(ctx context.Context) (ports.GraphBuilder, error) {
			cat, err := graft.Dep[ports.AssetCatalog](ctx)
			if err != nil {
				return nil, err
			}

			mat, err := graft.Dep[ports.Materializer](ctx)
			if err != nil {
				return nil, err
			}

			return New(cat, mat), nil
		},
	})
}
