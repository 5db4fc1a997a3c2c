package impact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

// NodeID is the unique identifier for the impact resolver Graft node.
const NodeID graft.ID = "engine.impact"

func init() {
	graft.Register(graft.Node[ports.ImpactResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ImpactResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			match, err := MatchFuncFor(cfg.Match)
			if err != nil {
				return nil, err
			}

			return New(match), nil
		},
	})
}
