package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/watcher"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newForwarder(t *testing.T, root string) (*forwarder, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	notifier := mocks.NewMockNotifier(ctrl)

	a := New(&domain.Config{}, log, nil, nil, nil, notifier, nil)
	return &forwarder{
		app:    a,
		ctx:    context.Background(),
		socket: "/run/df.sock",
		root:   root,
		hashes: watcher.NewHashCache(),
	}, notifier
}

func TestForwarder_SkipsUnchangedWrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.css")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	f, notifier := newForwarder(t, root)
	write := []ports.WatchEvent{{Path: path, Operation: ports.OpWrite}}

	notifier.EXPECT().Send(gomock.Any(), "/run/df.sock", "app.css").Return(nil).Times(2)

	f.forward(write)
	f.forward(write)

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))
	f.forward(write)
}

func TestForwarder_RemovalRefreshes(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "css", "gone.scss")

	f, notifier := newForwarder(t, root)
	notifier.EXPECT().Send(gomock.Any(), "/run/df.sock", "refresh", "css/gone.scss").Return(nil)

	f.forward([]ports.WatchEvent{{Path: path, Operation: ports.OpRemove}})
}

func TestForwarder_SendFailureIsLogged(t *testing.T) {
	root := t.TempDir()
	f, notifier := newForwarder(t, root)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Error(domain.ErrServerUnreachable)
	f.app.logger = log

	notifier.EXPECT().Send(gomock.Any(), "/run/df.sock", "refresh", "x.js").Return(domain.ErrServerUnreachable)

	f.forward([]ports.WatchEvent{{Path: filepath.Join(root, "x.js"), Operation: ports.OpRename}})
}

func TestRelativeTo(t *testing.T) {
	assert.Equal(t, "css/app.scss", relativeTo("/p/src", "/p/src/css/app.scss"))
	assert.Equal(t, "/p/other/app.scss", relativeTo("/p/src", "/p/other/app.scss"))
}

func TestApp_Watched(t *testing.T) {
	a := New(&domain.Config{Watch: domain.WatchConfig{
		Patterns: []string{"*.scss"},
		Ignore:   []string{"*scsslint_tmp*"},
	}}, nil, nil, nil, nil, nil, nil)

	assert.True(t, a.watched("/p/src/app.scss"))
	assert.False(t, a.watched("/p/src/app.js"))
	assert.False(t, a.watched("/p/src/app.scss-scsslint_tmp3.scss"))

	a.cfg.Watch.Patterns = nil
	assert.True(t, a.watched("/p/src/app.js"))
}
