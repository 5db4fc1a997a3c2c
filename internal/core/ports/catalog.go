package ports

import "go.trai.ch/dumpfiles/internal/core/domain"

// AssetCatalog is the source of asset definitions.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type AssetCatalog interface {
	// Names lists the declared asset names in declaration order.
	Names() ([]string, error)

	// Get returns a freshly built asset tree for the named asset.
	Get(name string) (domain.Asset, error)

	// Definition returns the declaration of the named asset.
	Definition(name string) (domain.AssetDefinition, error)

	// Reload discards the loaded definitions and reads them again.
	Reload() error

	// Factory returns the factory the catalog builds its assets with.
	Factory() AssetFactory
}

// AssetFactory creates asset trees from input declarations.
type AssetFactory interface {
	// Create builds a composite of the given inputs, resolved against root.
	// Inputs are file paths, globs, or "@name" references to other assets.
	Create(inputs, transforms []string, root string) (domain.Asset, error)
}
