package daemon_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/daemon"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const waitFor = 5 * time.Second

type serverFixture struct {
	driver *mocks.MockRebuildDriver
	cache  *mocks.MockDependencyMapCache
	log    *recordingLogger
	socket string
	client *daemon.Client
	cancel context.CancelFunc
	done   chan error
}

func startServer(t *testing.T, force bool, expect func(f *serverFixture)) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serverFixture{
		driver: mocks.NewMockRebuildDriver(ctrl),
		cache:  mocks.NewMockDependencyMapCache(ctrl),
		log:    &recordingLogger{},
		socket: socketPath(t),
		client: daemon.NewClient(),
		done:   make(chan error, 1),
	}
	if expect != nil {
		expect(f)
	}

	srv := daemon.NewServer(daemon.NewDispatcher(f.driver, f.cache, f.log, 0), f.log)

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.done <- srv.Serve(ctx, f.socket, force) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(domain.PIDFilePath(f.socket))
		return err == nil
	}, waitFor, 10*time.Millisecond)

	t.Cleanup(func() {
		cancel()
		select {
		case <-f.done:
		case <-time.After(waitFor):
		}
	})
	return f
}

func (f *serverFixture) stop(t *testing.T) {
	t.Helper()
	f.cancel()
	select {
	case err := <-f.done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("server did not stop")
	}
}

func TestServer_ExecutesCommandsInOrder(t *testing.T) {
	handled := make(chan string, 8)

	f := startServer(t, true, func(f *serverFixture) {
		gomock.InOrder(
			f.cache.EXPECT().Get(gomock.Any(), true).DoAndReturn(
				func(context.Context, bool) (*domain.DependencyMap, error) {
					handled <- "refresh"
					return domain.NewDependencyMap(), nil
				}),
			f.driver.EXPECT().DumpForChanges(gomock.Any(), []string{"css/app.scss"}, true).DoAndReturn(
				func(_ context.Context, paths []string, _ bool) domain.RebuildResult {
					handled <- paths[0]
					return domain.RebuildResult{}
				}),
			f.driver.EXPECT().DumpForChanges(gomock.Any(), []string{"js/app.js"}, false).DoAndReturn(
				func(_ context.Context, paths []string, _ bool) domain.RebuildResult {
					handled <- paths[0]
					return domain.RebuildResult{}
				}),
		)
	})

	expectHandled := func(wants ...string) {
		for _, want := range wants {
			select {
			case got := <-handled:
				assert.Equal(t, want, got)
			case <-time.After(waitFor):
				t.Fatalf("command %q was not handled", want)
			}
		}
	}

	require.NoError(t, f.client.Send(context.Background(), f.socket, "refresh", "", "  ", "css/app.scss", "quit", "ignored"))
	expectHandled("refresh", "css/app.scss")

	require.NoError(t, f.client.Send(context.Background(), f.socket, "js/app.js"))
	expectHandled("js/app.js")

	require.Eventually(t, func() bool { return f.log.Count("Dismissed") == 2 }, waitFor, 10*time.Millisecond)
	f.stop(t)

	lines := f.log.Lines()
	assert.Equal(t, "Listen: "+f.socket, lines[0])
	assert.Equal(t, 1, f.log.Count("> quit"))
	assert.Zero(t, f.log.Count("> ignored"), "lines after quit are not read")

	_, err := os.Stat(f.socket)
	assert.ErrorIs(t, err, os.ErrNotExist, "socket is removed on shutdown")
	_, err = os.Stat(domain.PIDFilePath(f.socket))
	assert.ErrorIs(t, err, os.ErrNotExist, "pid file is removed on shutdown")
}

func TestServer_SilentClientDoesNotBlockOthers(t *testing.T) {
	handled := make(chan struct{})

	f := startServer(t, false, func(f *serverFixture) {
		f.driver.EXPECT().DumpForChanges(gomock.Any(), []string{"a.css"}, false).DoAndReturn(
			func(context.Context, []string, bool) domain.RebuildResult {
				close(handled)
				return domain.RebuildResult{}
			})
	})

	silent, err := net.Dial("unix", f.socket)
	require.NoError(t, err)
	defer silent.Close()

	require.NoError(t, f.client.Send(context.Background(), f.socket, "a.css"))

	select {
	case <-handled:
	case <-time.After(waitFor):
		t.Fatal("command was blocked by a silent connection")
	}

	f.stop(t)
}

func TestServer_SocketPermissions(t *testing.T) {
	f := startServer(t, false, nil)

	info, err := os.Stat(f.socket)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.SocketPerm), info.Mode().Perm())

	f.stop(t)
}

func TestServer_ReplacesStaleSocket(t *testing.T) {
	sock := socketPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(sock), domain.DirPerm))
	require.NoError(t, os.WriteFile(sock, []byte("stale"), domain.FilePerm))

	srv := daemon.NewServer(daemon.NewDispatcher(nil, nil, &recordingLogger{}, 0), &recordingLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, sock, false) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("unix", sock)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, waitFor, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_BindFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	srv := daemon.NewServer(daemon.NewDispatcher(nil, nil, &recordingLogger{}, 0), &recordingLogger{})
	err := srv.Serve(context.Background(), filepath.Join(blocker, "d.sock"), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSocketBindFailed)
}

// flakyListener fails the first accepts with a transient error.
type flakyListener struct {
	net.Listener
	mu       sync.Mutex
	failures int
}

func (l *flakyListener) Accept() (net.Conn, error) {
	l.mu.Lock()
	if l.failures > 0 {
		l.failures--
		l.mu.Unlock()
		return nil, syscall.EMFILE
	}
	l.mu.Unlock()
	return l.Listener.Accept()
}

func TestServer_AcceptErrorsAreRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockRebuildDriver(ctrl)
	log := &recordingLogger{}

	handled := make(chan struct{})
	driver.EXPECT().DumpForChanges(gomock.Any(), []string{"a.css"}, false).DoAndReturn(
		func(context.Context, []string, bool) domain.RebuildResult {
			close(handled)
			return domain.RebuildResult{}
		})

	sock := socketPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(sock), domain.DirPerm))
	inner, err := net.Listen("unix", sock)
	require.NoError(t, err)
	lis := &flakyListener{Listener: inner, failures: 3}

	srv := daemon.NewServer(daemon.NewDispatcher(driver, nil, log, 0), log)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(ctx, lis, sock, false) }()

	require.NoError(t, daemon.NewClient().Send(context.Background(), sock, "a.css"))

	select {
	case <-handled:
	case <-time.After(waitFor):
		t.Fatal("server stopped accepting after transient errors")
	}

	warnings := 0
	for _, line := range log.Lines() {
		if strings.HasPrefix(line, "warn: accept failed: ") {
			warnings++
		}
	}
	assert.Equal(t, 3, warnings)

	cancel()
	require.NoError(t, <-done)
}

func TestAcceptBackoff(t *testing.T) {
	assert.Equal(t, 5*time.Millisecond, daemon.AcceptBackoff(0))
	assert.Equal(t, 10*time.Millisecond, daemon.AcceptBackoff(5*time.Millisecond))
	assert.Equal(t, time.Second, daemon.AcceptBackoff(800*time.Millisecond))
	assert.Equal(t, time.Second, daemon.AcceptBackoff(time.Second))
}

func TestServer_LongLines(t *testing.T) {
	long := strings.Repeat("a", 100*1024) + ".css"
	handled := make(chan struct{})

	f := startServer(t, false, func(f *serverFixture) {
		f.driver.EXPECT().DumpForChanges(gomock.Any(), []string{long}, false).DoAndReturn(
			func(context.Context, []string, bool) domain.RebuildResult {
				close(handled)
				return domain.RebuildResult{}
			})
	})

	require.NoError(t, f.client.Send(context.Background(), f.socket, long))
	select {
	case <-handled:
	case <-time.After(waitFor):
		t.Fatal("long line was not handled")
	}

	conn, err := net.Dial("unix", f.socket)
	require.NoError(t, err)
	_, _ = conn.Write([]byte(strings.Repeat("b", daemon.MaxLineSize+1) + "\n"))
	_ = conn.Close()

	require.Eventually(t, func() bool {
		for _, line := range f.log.Lines() {
			if strings.HasPrefix(line, "warn: failed to read command: ") {
				return true
			}
		}
		return false
	}, waitFor, 10*time.Millisecond)

	f.stop(t)
}

func TestClient_Errors(t *testing.T) {
	client := daemon.NewClient()

	err := client.Send(context.Background(), "", "refresh")
	require.ErrorIs(t, err, domain.ErrNoSocket)

	err = client.Send(context.Background(), filepath.Join(t.TempDir(), "none.sock"), "refresh")
	require.ErrorIs(t, err, domain.ErrServerUnreachable)
}
