package domain

import (
	"path"
	"path/filepath"
	"slices"
)

// Asset is a node of the asset forest produced by an asset catalog.
// It is implemented by Composite, Leaf and Reference only.
type Asset interface {
	isAsset()
}

// Composite is an ordered sequence of child assets.
type Composite struct {
	Children []Asset
}

// Leaf is an asset backed by a single source file and an ordered transform chain.
type Leaf struct {
	// SourceRoot is the directory the source path is relative to.
	SourceRoot string
	// SourcePath is the slash-separated path of the source file below SourceRoot.
	SourcePath string
	// Transforms names the transforms applied to the source content, in order.
	Transforms []string
}

// Reference aliases another asset of the catalog by name.
type Reference struct {
	Target string
}

func (Composite) isAsset() {}
func (Leaf) isAsset()      {}
func (Reference) isAsset() {}

// SourceKey returns the key under which the leaf is recorded in a DependencyMap.
func (l Leaf) SourceKey() string {
	return l.SourceRoot + "/" + l.SourcePath
}

// SourceFile returns the OS path of the source file.
func (l Leaf) SourceFile() string {
	return filepath.Join(l.SourceRoot, filepath.FromSlash(l.SourcePath))
}

// SourceDir returns the directory containing the source file.
func (l Leaf) SourceDir() string {
	return filepath.Join(l.SourceRoot, filepath.FromSlash(path.Dir(l.SourcePath)))
}

// WithTransforms returns a copy of the leaf with the given transform chain.
// It is used to build prefix views that only apply part of the chain.
func (l Leaf) WithTransforms(transforms []string) Leaf {
	return Leaf{
		SourceRoot: l.SourceRoot,
		SourcePath: l.SourcePath,
		Transforms: slices.Clone(transforms),
	}
}

// AssetDefinition is the declaration of a named asset in the manifest.
type AssetDefinition struct {
	Name       string
	Inputs     []string
	Transforms []string
	// Output is the path of the dumped file, relative to the output directory.
	Output string
}
