package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dumpfiles/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dumpfiles/internal/adapters/daemon"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dumpfiles/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dumpfiles/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/dumpfiles/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/engine/depcache"
	"go.trai.ch/dumpfiles/internal/engine/rebuild"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects main needs to run the CLI.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			rebuild.NodeID,
			depcache.NodeID,
			daemon.NodeID,
			daemon.ClientNodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
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

			server, err := graft.Dep[*daemon.Server](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, log, driver, cache, server, notifier, w), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Telemetry: tp}, nil
		},
	})
}
