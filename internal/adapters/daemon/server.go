package daemon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Server accepts command lines on a Unix domain socket.
//
// Every connection is read on its own goroutine, but all commands are executed
// one at a time by a single worker. A connection waits for its command to
// finish before its next line is read, so per-connection order is kept.
type Server struct {
	dispatcher *Dispatcher
	logger     ports.Logger
}

// NewServer creates a Server.
func NewServer(dispatcher *Dispatcher, logger ports.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type job struct {
	line string
	done chan struct{}
}

const (
	// maxLineSize bounds a single command line.
	maxLineSize = 1 << 20

	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Serve listens on socketPath until ctx is canceled. The force flag applies
// to the first dump only. A canceled context is a clean shutdown.
func (s *Server) Serve(ctx context.Context, socketPath string, force bool) error {
	lis, err := listen(socketPath)
	if err != nil {
		return err
	}
	return s.serve(ctx, lis, socketPath, force)
}

func (s *Server) serve(ctx context.Context, lis net.Listener, socketPath string, force bool) error {
	defer cleanup(socketPath)

	if err := writePIDFile(socketPath); err != nil {
		_ = lis.Close()
		return err
	}

	s.logger.Info("Listen: " + socketPath)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job)
	conns := newConnSet()

	g.Go(func() error {
		s.work(gctx, jobs, force)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		_ = lis.Close()
		conns.closeAll()
		return nil
	})

	g.Go(func() error {
		var delay time.Duration
		for {
			conn, err := lis.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				if errors.Is(err, net.ErrClosed) {
					return zerr.With(zerr.Wrap(err, "failed to accept connection"), "socket", socketPath)
				}

				delay = acceptBackoff(delay)
				s.logger.Warn(fmt.Sprintf("accept failed: %v; retrying in %s", err, delay))
				select {
				case <-time.After(delay):
				case <-gctx.Done():
					return nil
				}
				continue
			}
			delay = 0

			conns.add(conn)
			g.Go(func() error {
				defer conns.remove(conn)
				s.session(gctx, conn, jobs)
				return nil
			})
		}
	})

	return g.Wait()
}

// acceptBackoff doubles the previous delay within [minAcceptDelay, maxAcceptDelay].
func acceptBackoff(prev time.Duration) time.Duration {
	if prev == 0 {
		return minAcceptDelay
	}
	return min(prev*2, maxAcceptDelay)
}

// work is the single consumer of the job queue.
func (s *Server) work(ctx context.Context, jobs <-chan job, force bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-jobs:
			if s.dispatcher.Handle(ctx, j.line, force) {
				force = false
			}
			close(j.done)
		}
	}
}

func (s *Server) session(ctx context.Context, conn net.Conn, jobs chan<- job) {
	defer func() {
		_ = conn.Close()
		s.logger.Info("Dismissed")
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	defer func() {
		if err := scanner.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Warn(fmt.Sprintf("failed to read command: %v", err))
		}
	}()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.logger.Info("> " + line)
		if line == QuitCommand {
			return
		}

		j := job{line: line, done: make(chan struct{})}
		select {
		case jobs <- j:
		case <-ctx.Done():
			return
		}

		select {
		case <-j.done:
		case <-ctx.Done():
			return
		}
	}
}

func listen(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return nil, bindErr(err, socketPath)
	}

	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, bindErr(err, socketPath)
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, bindErr(err, socketPath)
	}

	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return nil, bindErr(err, socketPath)
	}

	return lis, nil
}

func bindErr(err error, socketPath string) error {
	return errors.Join(domain.ErrSocketBindFailed, zerr.With(zerr.Wrap(err, "listen failed"), "socket", socketPath))
}

func writePIDFile(socketPath string) error {
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(domain.PIDFilePath(socketPath), []byte(pid), domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write pid file"), "socket", socketPath)
	}
	return nil
}

func cleanup(socketPath string) {
	_ = os.Remove(socketPath)
	_ = os.Remove(domain.PIDFilePath(socketPath))
}

// connSet tracks live connections so they can be closed on shutdown.
type connSet struct {
	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

func newConnSet() *connSet {
	return &connSet{conns: make(map[net.Conn]struct{})}
}

func (c *connSet) add(conn net.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		_ = conn.Close()
		return
	}
	c.conns[conn] = struct{}{}
}

func (c *connSet) remove(conn net.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.conns, conn)
}

func (c *connSet) closeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for conn := range c.conns {
		_ = conn.Close()
	}
	clear(c.conns)
}
