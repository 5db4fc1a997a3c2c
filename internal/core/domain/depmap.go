package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// StringSet is an unordered set of strings.
// It is encoded in JSON as a sorted array.
type StringSet map[string]struct{}

// NewStringSet creates a set holding the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members of the set in ascending order.
func (s StringSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalJSON implements json.Marshaler.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewStringSet(values...)
	return nil
}

// DependencyMap records which assets depend on which source files and which
// assets reference other assets.
type DependencyMap struct {
	// Files maps a source key to the names of assets using it directly.
	Files map[string]StringSet
	// AssetRefs maps a referenced asset name to the names of assets referencing it.
	AssetRefs map[string]StringSet
}

// NewDependencyMap returns an empty map.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{
		Files:     make(map[string]StringSet),
		AssetRefs: make(map[string]StringSet),
	}
}

// AddFile records that asset name is built from the source key.
func (m *DependencyMap) AddFile(key, name string) {
	addTo(m.Files, key, name)
}

// AddRef records that asset referrer references asset target.
func (m *DependencyMap) AddRef(target, referrer string) {
	addTo(m.AssetRefs, target, referrer)
}

// Merge folds all records of other into m.
func (m *DependencyMap) Merge(other *DependencyMap) {
	if other == nil {
		return
	}
	for key, names := range other.Files {
		for name := range names {
			m.AddFile(key, name)
		}
	}
	for target, referrers := range other.AssetRefs {
		for referrer := range referrers {
			m.AddRef(target, referrer)
		}
	}
}

// Empty reports whether the map holds no records.
func (m *DependencyMap) Empty() bool {
	return len(m.Files) == 0 && len(m.AssetRefs) == 0
}

// Equal reports whether both maps hold the same records.
func (m *DependencyMap) Equal(other *DependencyMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	return setsEqual(m.Files, other.Files) && setsEqual(m.AssetRefs, other.AssetRefs)
}

// SortedFiles returns the source keys in ascending order.
func (m *DependencyMap) SortedFiles() []string {
	return slices.Sorted(maps.Keys(m.Files))
}

// SortedRefs returns the referenced asset names in ascending order.
func (m *DependencyMap) SortedRefs() []string {
	return slices.Sorted(maps.Keys(m.AssetRefs))
}

func addTo(index map[string]StringSet, key, value string) {
	set, ok := index[key]
	if !ok {
		set = make(StringSet)
		index[key] = set
	}
	set.Add(value)
}

func setsEqual(a, b map[string]StringSet) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok || !maps.Equal(av, bv) {
			return false
		}
	}
	return true
}
