package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReferencePrefix marks an input that names another asset.
const ReferencePrefix = "@"

var _ ports.AssetFactory = (*Factory)(nil)

// Factory builds asset trees from input declarations.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create implements ports.AssetFactory.
func (f *Factory) Create(inputs, transforms []string, root string) (domain.Asset, error) {
	children := make([]domain.Asset, 0, len(inputs))

	for _, input := range inputs {
		if target, ok := strings.CutPrefix(input, ReferencePrefix); ok {
			children = append(children, domain.Reference{Target: target})
			continue
		}

		if isGlob(input) {
			leaves, err := globLeaves(input, transforms, root)
			if err != nil {
				return nil, err
			}
			children = append(children, leaves...)
			continue
		}

		rel := filepath.ToSlash(filepath.Clean(filepath.FromSlash(input)))
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil || info.IsDir() {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInputNotFound, "missing input"), "input", input), "root", root)
		}
		children = append(children, newLeaf(root, rel, transforms))
	}

	return domain.Composite{Children: children}, nil
}

func isGlob(input string) bool {
	return strings.ContainsAny(input, "*?[")
}

func globLeaves(pattern string, transforms []string, root string) ([]domain.Asset, error) {
	matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid input pattern"), "input", pattern)
	}
	slices.Sort(matches)

	leaves := make([]domain.Asset, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		rel, err := filepath.Rel(root, match)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize input"), "input", match)
		}
		leaves = append(leaves, newLeaf(root, filepath.ToSlash(rel), transforms))
	}
	return leaves, nil
}

func newLeaf(root, rel string, transforms []string) domain.Leaf {
	return domain.Leaf{
		SourceRoot: root,
		SourcePath: rel,
		Transforms: slices.Clone(transforms),
	}
}
