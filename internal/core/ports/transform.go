package ports

import "go.trai.ch/dumpfiles/internal/core/domain"

// Transform is a named content-processing step of a leaf's chain.
//
//go:generate mockgen -source=transform.go -destination=mocks/mock_transform.go -package=mocks
type Transform interface {
	Name() string
	Apply(content []byte, sourceDir string) ([]byte, error)
}

// ChildExtractor is a Transform that can declare the assets it pulls in at build time.
type ChildExtractor interface {
	Transform

	// Children returns the assets referenced by content, which has already
	// gone through the transforms preceding this one.
	Children(factory AssetFactory, content []byte, sourceDir string) ([]domain.Asset, error)
}

// TransformRegistry resolves transform names.
type TransformRegistry interface {
	Lookup(name string) (Transform, bool)
}
