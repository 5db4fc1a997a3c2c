package watcher

import (
	"sync"

	"go.trai.ch/dumpfiles/internal/adapters/fs"
)

// HashCache remembers the content hash of watched files so that a write
// which leaves the content unchanged can be ignored.
type HashCache struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewHashCache creates an empty cache.
func NewHashCache() *HashCache {
	return &HashCache{hashes: make(map[string]uint64)}
}

// Changed hashes the file at path and reports whether the content differs
// from the last hash seen. Unknown and unreadable files count as changed.
func (h *HashCache) Changed(path string) bool {
	sum, err := fs.HashFile(path)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		delete(h.hashes, path)
		return true
	}

	prev, ok := h.hashes[path]
	h.hashes[path] = sum
	return !ok || prev != sum
}

// Forget drops the hash of path.
func (h *HashCache) Forget(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.hashes, path)
}

// Len returns the number of remembered files.
func (h *HashCache) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hashes)
}
