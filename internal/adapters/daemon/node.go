package daemon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/config"
	"go.trai.ch/dumpfiles/internal/adapters/logger"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/engine/depcache" //nolint:depguard // Wired in daemon wiring
	"go.trai.ch/dumpfiles/internal/engine/rebuild"  //nolint:depguard // Wired in daemon wiring
)

const (
	// NodeID is the unique identifier for the command server Graft node.
	NodeID graft.ID = "adapter.daemon"
	// ClientNodeID is the unique identifier for the notifier client Graft node.
	ClientNodeID graft.ID = "adapter.daemon.client"
)

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, rebuild.NodeID, depcache.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			driver, err := graft.Dep[ports.RebuildDriver](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.DependencyMapCache](ctx)
			if err != nil {
				return nil, err
			}

			return NewServer(NewDispatcher(driver, cache, log, cfg.Server.CommandDelay), log), nil
		},
	})

	graft.Register(graft.Node[ports.Notifier]{
		ID:        ClientNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Notifier, error) {
			return NewClient(), nil
		},
	})
}
