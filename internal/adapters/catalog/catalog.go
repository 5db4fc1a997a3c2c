// Package catalog provides the asset catalog backed by a YAML manifest.
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.AssetCatalog = (*Catalog)(nil)

// Catalog implements ports.AssetCatalog. The manifest is read on first use
// and again on every Reload.
type Catalog struct {
	path     string
	registry ports.TransformRegistry
	factory  *Factory

	mu         sync.Mutex
	loaded     bool
	sourceRoot string
	names      []string
	defs       map[string]domain.AssetDefinition
}

// New creates a catalog for the manifest at path.
func New(path string, registry ports.TransformRegistry) *Catalog {
	return &Catalog{
		path:     path,
		registry: registry,
		factory:  NewFactory(),
	}
}

// Names implements ports.AssetCatalog.
func (c *Catalog) Names() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	return slices.Clone(c.names), nil
}

// Definition implements ports.AssetCatalog.
func (c *Catalog) Definition(name string) (domain.AssetDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return domain.AssetDefinition{}, err
	}
	def, ok := c.defs[name]
	if !ok {
		return domain.AssetDefinition{}, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "unknown asset"), "asset", name)
	}
	return def, nil
}

// Get implements ports.AssetCatalog. Every call builds a fresh tree.
func (c *Catalog) Get(name string) (domain.Asset, error) {
	def, err := c.Definition(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	root := c.sourceRoot
	c.mu.Unlock()

	asset, err := c.factory.Create(def.Inputs, def.Transforms, root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create asset"), "asset", name)
	}
	return asset, nil
}

// Reload implements ports.AssetCatalog.
func (c *Catalog) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = false
	return c.ensureLoaded()
}

// Factory implements ports.AssetCatalog.
func (c *Catalog) Factory() ports.AssetFactory {
	return c.factory
}

// Path returns the manifest path.
func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) ensureLoaded() error {
	if c.loaded {
		return nil
	}

	manifest, err := readManifest(c.path)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(manifest.Assets))
	defs := make(map[string]domain.AssetDefinition, len(manifest.Assets))
	for i, dto := range manifest.Assets {
		def, err := c.validate(i, dto)
		if err != nil {
			return err
		}
		if _, dup := defs[def.Name]; dup {
			return zerr.With(zerr.Wrap(domain.ErrDuplicateAssetName, "asset declared twice"), "asset", def.Name)
		}
		names = append(names, def.Name)
		defs[def.Name] = def
	}

	sourceRoot := manifest.SourceRoot
	if sourceRoot == "" {
		sourceRoot = "."
	}
	if !filepath.IsAbs(sourceRoot) {
		sourceRoot = filepath.Join(filepath.Dir(c.path), sourceRoot)
	}

	c.sourceRoot = filepath.Clean(sourceRoot)
	c.names = names
	c.defs = defs
	c.loaded = true
	return nil
}

func (c *Catalog) validate(index int, dto AssetDTO) (domain.AssetDefinition, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return domain.AssetDefinition{}, zerr.With(zerr.Wrap(domain.ErrInvalidAssetName, "invalid manifest entry"), "index", index)
	}
	if strings.TrimSpace(dto.Output) == "" {
		return domain.AssetDefinition{}, zerr.With(zerr.Wrap(domain.ErrMissingOutput, "invalid manifest entry"), "asset", name)
	}
	for _, t := range dto.Transforms {
		if _, ok := c.registry.Lookup(t); !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownTransform, "invalid manifest entry"), "asset", name)
			return domain.AssetDefinition{}, zerr.With(err, "transform", t)
		}
	}

	return domain.AssetDefinition{
		Name:       name,
		Inputs:     slices.Clone(dto.Inputs),
		Transforms: slices.Clone(dto.Transforms),
		Output:     filepath.ToSlash(filepath.Clean(dto.Output)),
	}, nil
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrCatalogLoadFailed, zerr.With(zerr.Wrap(err, "failed to read manifest"), "manifest", path))
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Join(domain.ErrCatalogLoadFailed, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "manifest", path))
	}
	return &manifest, nil
}
