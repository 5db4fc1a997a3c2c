package daemon_test

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingLogger collects log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *recordingLogger) Debug(msg string) { l.record("debug: " + msg) }
func (l *recordingLogger) Info(msg string)  { l.record(msg) }
func (l *recordingLogger) Warn(msg string)  { l.record("warn: " + msg) }
func (l *recordingLogger) Error(err error)  { l.record("error: " + err.Error()) }

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.lines)
}

func (l *recordingLogger) Count(line string) int {
	n := 0
	for _, got := range l.Lines() {
		if got == line {
			n++
		}
	}
	return n
}

// socketPath returns a short socket path; sun_path is limited to ~100 bytes.
func socketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "df")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "run", "d.sock")
}
