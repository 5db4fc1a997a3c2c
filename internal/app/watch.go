package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/dumpfiles/internal/adapters/daemon"  //nolint:depguard // Protocol commands
	"go.trai.ch/dumpfiles/internal/adapters/watcher" //nolint:depguard // Debouncer and HashCache are used in-process
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Socket is the command server to notify. It defaults to the configured
	// listen path.
	Socket string
	// Root is the directory to watch. It defaults to watch.root.
	Root string
}

// Watch forwards source changes under the watch root to the command server
// until ctx is canceled. Paths are sent relative to the watch root. Added,
// removed and renamed files are preceded by a refresh command; a write is
// only forwarded when the file content changed.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	socket := a.socket(opts.Socket)
	if socket == "" {
		return domain.ErrNoSocket
	}

	root := a.cfg.Watch.Root
	if opts.Root != "" {
		abs, err := filepath.Abs(opts.Root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve watch root"), "dir", opts.Root)
		}
		root = abs
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "dir", root)
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
		}
	}()

	window := a.cfg.Watch.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	f := &forwarder{
		app:    a,
		ctx:    context.WithoutCancel(ctx),
		socket: socket,
		root:   root,
		hashes: watcher.NewHashCache(),
	}
	debouncer := watcher.NewDebouncer(window, f.forward)

	a.logger.Info(fmt.Sprintf("Watching %s", root))

	for event := range a.watcher.Events() {
		if a.watched(event.Path) {
			debouncer.Add(event)
		}
	}
	debouncer.Flush()

	return nil
}

// watched reports whether the base name of path matches watch.patterns and
// none of watch.ignore. An empty pattern list matches everything.
func (a *App) watched(path string) bool {
	base := filepath.Base(path)
	if matchAny(a.cfg.Watch.Ignore, base) {
		return false
	}
	return len(a.cfg.Watch.Patterns) == 0 || matchAny(a.cfg.Watch.Patterns, base)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

type forwarder struct {
	app    *App
	ctx    context.Context
	socket string
	root   string
	hashes *watcher.HashCache
}

// forward sends one debounced batch on a single connection.
func (f *forwarder) forward(events []ports.WatchEvent) {
	var lines []string
	refresh := false

	for _, event := range events {
		switch {
		case event.Operation == ports.OpCreate:
			f.hashes.Changed(event.Path)
			refresh = true
		case event.Operation.Structural():
			f.hashes.Forget(event.Path)
			refresh = true
		case !f.hashes.Changed(event.Path):
			f.app.logger.Debug(fmt.Sprintf("unchanged: %s", event.Path))
			continue
		}
		lines = append(lines, relativeTo(f.root, event.Path))
	}

	if len(lines) == 0 {
		return
	}
	if refresh {
		lines = append([]string{daemon.RefreshCommand}, lines...)
	}

	f.app.logger.Debug("notify: " + strings.Join(lines, " "))
	if err := f.app.notifier.Send(f.ctx, f.socket, lines...); err != nil {
		f.app.logger.Error(err)
	}
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
