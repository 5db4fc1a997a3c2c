package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/watcher"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextEvent(t *testing.T, events <-chan ports.WatchEvent, match func(ports.WatchEvent) bool) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed")
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestWatcher_ReportsChangesInNewDirectories(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer w.Stop() //nolint:errcheck // Test cleanup

	events := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()

	file := filepath.Join(root, "app.scss")
	require.NoError(t, os.WriteFile(file, []byte("a"), domain.FilePerm))
	ev := nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == file })
	assert.Equal(t, ports.OpCreate, ev.Operation)

	dir := filepath.Join(root, "partials")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	// The directory is added asynchronously; retry the write until it is seen.
	nested := filepath.Join(dir, "_vars.scss")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(nested, []byte(time.Now().String()), domain.FilePerm)
		select {
		case ev := <-events:
			return ev.Path == nested
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_StartMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
