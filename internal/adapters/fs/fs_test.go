package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/fs"
	"go.trai.ch/dumpfiles/internal/core/domain"
)

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.css")
	require.NoError(t, os.WriteFile(path, []byte("body{}"), domain.FilePerm))

	sum, err := fs.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, fs.HashBytes([]byte("body{}")), sum)

	_, err = fs.HashFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.css")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("one"), domain.FilePerm))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("two"), domain.PrivateFilePerm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestWalker_WalkDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"css/partials", ".git/objects", "node_modules/x", "js", "tmp_scsslint_tmp_1"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), domain.DirPerm))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "css", "a.scss"), nil, domain.FilePerm))

	var got []string
	for dir := range fs.NewWalker().WalkDirs(root, []string{"*scsslint_tmp*"}) {
		rel, err := filepath.Rel(root, dir)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{".", "css", "css/partials", "js"}, got)
}
