package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/watcher"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

type batches struct {
	mu  sync.Mutex
	got [][]ports.WatchEvent
}

func (b *batches) record(events []ports.WatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, events)
}

func (b *batches) all() [][]ports.WatchEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/p/src/css/app.scss"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/p/src/css/app.scss")}, b.all()[0])
	})
}

func TestDebouncer_CoalescesWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add(write("/p/b.scss"))
		time.Sleep(60 * time.Millisecond)
		d.Add(write("/p/a.scss"))
		time.Sleep(60 * time.Millisecond)
		d.Add(write("/p/b.scss"))

		synctest.Wait()
		assert.Empty(t, b.all(), "window restarts on every event")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/p/a.scss"), write("/p/b.scss")}, b.all()[0])
	})
}

func TestDebouncer_StructuralOperationWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.record)

		d.Add(ports.WatchEvent{Path: "/p/new.scss", Operation: ports.OpCreate})
		d.Add(write("/p/new.scss"))
		d.Add(write("/p/old.scss"))
		d.Add(ports.WatchEvent{Path: "/p/old.scss", Operation: ports.OpRemove})

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{
			{Path: "/p/new.scss", Operation: ports.OpCreate},
			{Path: "/p/old.scss", Operation: ports.OpRemove},
		}, b.all()[0])
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.record)

		d.Add(write("/p/a.scss"))
		time.Sleep(100 * time.Millisecond)
		d.Add(write("/p/a.scss"))
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, b.all(), 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(time.Hour, b.record)

		d.Add(write("/p/a.scss"))
		d.Flush()
		require.Len(t, b.all(), 1, "flush runs the callback synchronously")

		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Len(t, b.all(), 1, "flushed events are not delivered twice")

		d.Flush()
		assert.Len(t, b.all(), 1, "empty flush does nothing")
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add(write("/p/a.scss"))
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
