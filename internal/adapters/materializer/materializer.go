// Package materializer renders assets and writes them to the output directory.
package materializer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	dfs "go.trai.ch/dumpfiles/internal/adapters/fs"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Materializer = (*Materializer)(nil)

// Materializer implements ports.Materializer on top of the catalog and the
// transform registry.
type Materializer struct {
	cfg      *domain.Config
	catalog  ports.AssetCatalog
	registry ports.TransformRegistry
	logger   ports.Logger
}

// New creates a Materializer. The output directory is read from cfg on every
// dump so that it can be overridden after construction.
func New(cfg *domain.Config, catalog ports.AssetCatalog, registry ports.TransformRegistry, logger ports.Logger) *Materializer {
	return &Materializer{
		cfg:      cfg,
		catalog:  catalog,
		registry: registry,
		logger:   logger,
	}
}

// Load implements ports.Materializer.
func (m *Materializer) Load(ctx context.Context, leaf domain.Leaf) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(leaf.SourceFile())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source"), "source", leaf.SourceKey())
	}

	sourceDir := leaf.SourceDir()
	for _, name := range leaf.Transforms {
		t, err := m.lookup(name)
		if err != nil {
			return nil, err
		}
		content, err = t.Apply(content, sourceDir)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "transform failed"), "transform", name)
			return nil, zerr.With(err, "source", leaf.SourceKey())
		}
	}

	return content, nil
}

// CanExtract implements ports.Materializer.
func (m *Materializer) CanExtract(transform string) bool {
	t, ok := m.registry.Lookup(transform)
	if !ok {
		return false
	}
	_, ok = t.(ports.ChildExtractor)
	return ok
}

// ExtractChildren implements ports.Materializer.
func (m *Materializer) ExtractChildren(
	ctx context.Context, transform string, content []byte, sourceDir string,
) ([]domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := m.lookup(transform)
	if err != nil {
		return nil, err
	}
	extractor, ok := t.(ports.ChildExtractor)
	if !ok {
		return nil, zerr.With(zerr.New("transform does not declare children"), "transform", transform)
	}

	return extractor.Children(m.catalog.Factory(), content, sourceDir)
}

// Dump implements ports.Materializer.
func (m *Materializer) Dump(ctx context.Context, name string) error {
	def, err := m.catalog.Definition(name)
	if err != nil {
		return err
	}
	asset, err := m.catalog.Get(name)
	if err != nil {
		return err
	}

	content, err := m.render(ctx, asset, map[string]struct{}{name: {}})
	if err != nil {
		return err
	}

	target := filepath.Join(m.cfg.OutputDir, filepath.FromSlash(def.Output))
	if unchanged(target, content) {
		m.logger.Debug(fmt.Sprintf("[file=] %s", target))
		return nil
	}

	if err := dfs.WriteFileAtomic(target, content, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output"), "asset", name)
	}

	m.logger.Info(fmt.Sprintf("[file+] %s", target))
	return nil
}

func (m *Materializer) render(ctx context.Context, asset domain.Asset, active map[string]struct{}) ([]byte, error) {
	switch a := asset.(type) {
	case domain.Composite:
		parts := make([][]byte, 0, len(a.Children))
		for _, child := range a.Children {
			part, err := m.render(ctx, child, active)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		return bytes.Join(parts, []byte("\n")), nil

	case domain.Leaf:
		return m.Load(ctx, a)

	case domain.Reference:
		if _, seen := active[a.Target]; seen {
			return nil, zerr.With(zerr.Wrap(domain.ErrReferenceCycle, "reference revisits an asset"), "asset", a.Target)
		}
		target, err := m.catalog.Get(a.Target)
		if err != nil {
			return nil, err
		}
		active[a.Target] = struct{}{}
		defer delete(active, a.Target)
		return m.render(ctx, target, active)
	}

	return nil, zerr.With(zerr.New("unsupported asset type"), "type", fmt.Sprintf("%T", asset))
}

func (m *Materializer) lookup(name string) (ports.Transform, error) {
	t, ok := m.registry.Lookup(name)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTransform, "transform is not registered"), "transform", name)
	}
	return t, nil
}

// unchanged reports whether the file at path already holds content.
func unchanged(path string, content []byte) bool {
	sum, err := dfs.HashFile(path)
	if err != nil {
		return false
	}
	return sum == dfs.HashBytes(content)
}
