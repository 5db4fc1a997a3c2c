// Package mapstore persists the dependency map as a JSON cache file.
package mapstore

import (
	"encoding/json"
	"errors"
	"os"

	dfs "go.trai.ch/dumpfiles/internal/adapters/fs"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion is the version of the cache file layout.
const FormatVersion = 1

var _ ports.DependencyMapStore = (*Store)(nil)

// envelope is the on-disk layout of the cache file.
type envelope struct {
	Version int                         `json:"version"`
	Files   map[string]domain.StringSet `json:"files"`
	Assets  map[string]domain.StringSet `json:"assets"`
}

// Store implements ports.DependencyMapStore using a single JSON file.
type Store struct {
	path string
}

// New creates a Store for the cache file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path implements ports.DependencyMapStore.
func (s *Store) Path() string {
	return s.path
}

// Exists implements ports.DependencyMapStore.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Mode().IsRegular()
}

// Load implements ports.DependencyMapStore.
func (s *Store) Load() (*domain.DependencyMap, error) {
	//nolint:gosec // Path is derived from the configured cache directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read dependency cache"), "path", s.path)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Join(domain.ErrCacheCorrupt, zerr.With(zerr.Wrap(err, "failed to decode dependency cache"), "path", s.path))
	}

	switch {
	case env.Version != FormatVersion:
		err := zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "unsupported cache version"), "version", env.Version)
		return nil, zerr.With(err, "path", s.path)
	case env.Files == nil || env.Assets == nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "cache is missing a section"), "path", s.path)
	}

	m := domain.NewDependencyMap()
	for key, names := range env.Files {
		for name := range names {
			m.AddFile(key, name)
		}
	}
	for target, referrers := range env.Assets {
		for referrer := range referrers {
			m.AddRef(target, referrer)
		}
	}
	return m, nil
}

// Save implements ports.DependencyMapStore.
func (s *Store) Save(m *domain.DependencyMap) error {
	if m == nil {
		m = domain.NewDependencyMap()
	}

	data, err := json.MarshalIndent(envelope{
		Version: FormatVersion,
		Files:   m.Files,
		Assets:  m.AssetRefs,
	}, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, zerr.Wrap(err, "failed to encode dependency cache"))
	}

	if err := dfs.WriteFileAtomic(s.path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, err)
	}
	return nil
}
