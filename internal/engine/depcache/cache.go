// Package depcache keeps the dependency map in memory and on disk.
package depcache

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
)

var _ ports.DependencyMapCache = (*Cache)(nil)

// Cache implements ports.DependencyMapCache.
// A built map is persisted and kept as the in-process snapshot; later calls
// serve the snapshot until a forced rebuild replaces it.
type Cache struct {
	builder ports.GraphBuilder
	store   ports.DependencyMapStore
	logger  ports.Logger

	mu       sync.Mutex
	snapshot *domain.DependencyMap
}

// New creates a Cache.
func New(builder ports.GraphBuilder, store ports.DependencyMapStore, logger ports.Logger) *Cache {
	return &Cache{
		builder: builder,
		store:   store,
		logger:  logger,
	}
}

// Get returns the dependency map, rebuilding it when force is set, when the
// cache file is absent or when it cannot be read.
// A partial map is returned together with the build error.
func (c *Cache) Get(ctx context.Context, force bool) (*domain.DependencyMap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.store.Exists() {
		if c.snapshot != nil {
			return c.snapshot, nil
		}

		m, err := c.store.Load()
		if err == nil {
			c.snapshot = m
			return m, nil
		}
		c.logger.Debug(fmt.Sprintf("dependency cache at %s is unusable, rebuilding: %v", c.store.Path(), err))
	}

	return c.rebuild(ctx)
}

func (c *Cache) rebuild(ctx context.Context) (*domain.DependencyMap, error) {
	c.logger.Debug("building dependency map")

	m, err := c.builder.Build(ctx)
	if m == nil {
		return nil, err
	}

	if saveErr := c.store.Save(m); saveErr != nil {
		c.logger.Warn(fmt.Sprintf("could not persist dependency cache at %s: %v", c.store.Path(), saveErr))
	}

	c.snapshot = m
	return m, err
}

// Path returns the cache file path.
func (c *Cache) Path() string {
	return c.store.Path()
}
