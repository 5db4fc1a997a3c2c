// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dumpfiles/internal/adapters/catalog"
	_ "go.trai.ch/dumpfiles/internal/adapters/config"
	_ "go.trai.ch/dumpfiles/internal/adapters/daemon"
	_ "go.trai.ch/dumpfiles/internal/adapters/logger"
	_ "go.trai.ch/dumpfiles/internal/adapters/mapstore"
	_ "go.trai.ch/dumpfiles/internal/adapters/materializer"
	_ "go.trai.ch/dumpfiles/internal/adapters/telemetry"
	_ "go.trai.ch/dumpfiles/internal/adapters/transform"
	_ "go.trai.ch/dumpfiles/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/dumpfiles/internal/app"
	_ "go.trai.ch/dumpfiles/internal/engine/depcache"
	_ "go.trai.ch/dumpfiles/internal/engine/graph"
	_ "go.trai.ch/dumpfiles/internal/engine/impact"
	_ "go.trai.ch/dumpfiles/internal/engine/rebuild"
)
