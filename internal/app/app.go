// Package app implements the use cases behind the dumpfiles commands.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg      *domain.Config
	logger   ports.Logger
	driver   ports.RebuildDriver
	cache    ports.DependencyMapCache
	server   ports.CommandServer
	notifier ports.Notifier
	watcher  ports.Watcher
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	log ports.Logger,
	driver ports.RebuildDriver,
	cache ports.DependencyMapCache,
	server ports.CommandServer,
	notifier ports.Notifier,
	watcher ports.Watcher,
) *App {
	return &App{
		cfg:      cfg,
		logger:   log,
		driver:   driver,
		cache:    cache,
		server:   server,
		notifier: notifier,
		watcher:  watcher,
	}
}

// DumpOptions configuration for the Dump method.
type DumpOptions struct {
	// Force rebuilds the dependency map before the first dump.
	Force bool
	// Listen is the socket to serve on after the one-shot dump.
	// It defaults to the configured listen path.
	Listen string
	// WriteTo overrides the configured output directory.
	WriteTo string
}

// Dump rebuilds the assets impacted by files and then, when a socket is
// configured, serves change notifications until ctx is canceled.
func (a *App) Dump(ctx context.Context, files []string, opts DumpOptions) error {
	if opts.WriteTo != "" {
		dir, err := filepath.Abs(opts.WriteTo)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve output directory"), "dir", opts.WriteTo)
		}
		a.cfg.OutputDir = dir
	}

	a.logger.Info(fmt.Sprintf("Dumping assets from %s.", a.cfg.Manifest))

	failed := false
	if len(files) > 0 {
		failed = !a.report(a.driver.DumpForChanges(ctx, files, opts.Force))
	}

	socket := a.socket(opts.Listen)
	if socket != "" {
		return a.server.Serve(ctx, socket, opts.Force)
	}

	if failed {
		return domain.ErrDumpFailed
	}
	return nil
}

// report logs every failure of res and reports whether there were none.
func (a *App) report(res domain.RebuildResult) bool {
	for _, err := range res.Errors {
		a.logger.Error(err)
	}
	if res.Empty() {
		a.logger.Info("No assets to dump.")
	}
	return len(res.Errors) == 0
}

// Notify sends lines to the command server listening on socket.
func (a *App) Notify(ctx context.Context, socket string, lines []string) error {
	socket = a.socket(socket)
	if socket == "" {
		return domain.ErrNoSocket
	}

	sent := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			sent = append(sent, line)
		}
	}
	if len(sent) == 0 {
		return nil
	}

	return a.notifier.Send(ctx, socket, sent...)
}

// Refresh rebuilds the dependency map and writes it to the cache file.
func (a *App) Refresh(ctx context.Context) error {
	m, err := a.cache.Get(ctx, true)
	if m == nil {
		return err
	}
	if err != nil {
		a.logger.Error(err)
	}

	a.logger.Info(fmt.Sprintf("Dependency cache written to %s (%d sources, %d references).",
		a.cache.Path(), len(m.Files), len(m.AssetRefs)))
	return nil
}

func (a *App) socket(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return a.cfg.Listen
}
