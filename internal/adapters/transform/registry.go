// Package transform provides the content transforms an asset chain can name.
package transform

import (
	"maps"
	"slices"

	"go.trai.ch/dumpfiles/internal/core/ports"
)

var _ ports.TransformRegistry = (*Registry)(nil)

// Registry resolves transforms by name.
type Registry struct {
	transforms map[string]ports.Transform
}

// NewRegistry creates a registry holding the given transforms.
// A later transform replaces an earlier one of the same name.
func NewRegistry(transforms ...ports.Transform) *Registry {
	r := &Registry{transforms: make(map[string]ports.Transform, len(transforms))}
	for _, t := range transforms {
		r.transforms[t.Name()] = t
	}
	return r
}

// Default returns the registry of built-in transforms.
func Default() *Registry {
	return NewRegistry(NewImport(), StripComments{}, Trim{})
}

// Lookup returns the named transform.
func (r *Registry) Lookup(name string) (ports.Transform, bool) {
	t, ok := r.transforms[name]
	return t, ok
}

// Names lists the registered transform names in ascending order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.transforms))
}
