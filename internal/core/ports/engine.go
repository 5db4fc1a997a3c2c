package ports

import (
	"context"

	"go.trai.ch/dumpfiles/internal/core/domain"
)

// GraphBuilder walks the asset catalog and records its dependencies.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type GraphBuilder interface {
	// Build returns the dependency map of every catalog asset.
	// Assets that fail to walk are left out and reported in the error.
	Build(ctx context.Context) (*domain.DependencyMap, error)
}

// DependencyMapCache serves the dependency map from memory, disk, or a fresh build.
type DependencyMapCache interface {
	Get(ctx context.Context, force bool) (*domain.DependencyMap, error)
	Path() string
}

// ImpactResolver computes the assets to rebuild for a set of changed paths.
type ImpactResolver interface {
	Resolve(changed []string, deps *domain.DependencyMap) []string
}

// RebuildDriver dumps the assets impacted by changed paths.
type RebuildDriver interface {
	DumpForChanges(ctx context.Context, paths []string, force bool) domain.RebuildResult
}
