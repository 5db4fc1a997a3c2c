// Package watcher implements file system watching for the asset sources.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/dumpfiles/internal/core/ports"
)

// Debouncer coalesces rapid file system events into batches.
// Within a batch each path appears once; a structural operation on a path
// wins over a plain write.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)

	// runMu keeps callbacks from overlapping.
	runMu sync.Mutex
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add queues an event and restarts the debounce window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[event.Path]; !ok || !prev.Structural() {
		d.pending[event.Path] = event.Operation
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	events := d.drain()
	d.mu.Unlock()

	d.run(events)
}

// Flush immediately runs the callback with all pending events and blocks
// until it completes.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	events := d.drain()
	d.mu.Unlock()

	d.run(events)
}

// drain empties the pending set. The caller holds mu.
func (d *Debouncer) drain() []ports.WatchEvent {
	if len(d.pending) == 0 {
		return nil
	}

	events := make([]ports.WatchEvent, 0, len(d.pending))
	for path, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: path, Operation: op})
	}
	clear(d.pending)

	slices.SortFunc(events, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return events
}

func (d *Debouncer) run(events []ports.WatchEvent) {
	if len(events) == 0 || d.callback == nil {
		return
	}

	d.runMu.Lock()
	defer d.runMu.Unlock()
	d.callback(events)
}
