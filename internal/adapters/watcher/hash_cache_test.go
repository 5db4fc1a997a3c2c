package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/watcher"
	"go.trai.ch/dumpfiles/internal/core/domain"
)

func TestHashCache_Changed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.scss")
	require.NoError(t, os.WriteFile(path, []byte("a"), domain.FilePerm))

	h := watcher.NewHashCache()
	assert.True(t, h.Changed(path), "first sight counts as a change")
	assert.False(t, h.Changed(path), "same content")

	require.NoError(t, os.WriteFile(path, []byte("b"), domain.FilePerm))
	assert.True(t, h.Changed(path))
	assert.Equal(t, 1, h.Len())

	h.Forget(path)
	assert.Zero(t, h.Len())
	assert.True(t, h.Changed(path))
}

func TestHashCache_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.scss")
	require.NoError(t, os.WriteFile(path, []byte("a"), domain.FilePerm))

	h := watcher.NewHashCache()
	h.Changed(path)
	require.NoError(t, os.Remove(path))

	assert.True(t, h.Changed(path))
	assert.Zero(t, h.Len())
}
