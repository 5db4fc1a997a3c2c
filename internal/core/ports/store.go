package ports

import "go.trai.ch/dumpfiles/internal/core/domain"

// DependencyMapStore persists a dependency map to the cache file.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DependencyMapStore interface {
	// Exists reports whether the cache file is present.
	Exists() bool

	// Load reads the cache file.
	// Content that is not a dependency map yields domain.ErrCacheCorrupt.
	Load() (*domain.DependencyMap, error)

	// Save overwrites the cache file with deps.
	Save(deps *domain.DependencyMap) error

	// Path returns the cache file location.
	Path() string
}
