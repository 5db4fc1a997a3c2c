// Package impact resolves which assets a set of changed paths affects.
package impact

import (
	"strings"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// MatchFunc reports whether a changed path refers to the recorded source key.
type MatchFunc func(key, changed string) bool

// SuffixMatch matches when the key ends with the changed path. It is a plain
// string comparison: "app.scss" also matches ".../fooapp.scss".
func SuffixMatch(key, changed string) bool {
	return strings.HasSuffix(key, changed)
}

// SegmentMatch matches when the key ends with the changed path on a path
// segment boundary.
func SegmentMatch(key, changed string) bool {
	changed = strings.TrimPrefix(changed, "/")
	if !strings.HasSuffix(key, changed) {
		return false
	}
	rest := key[:len(key)-len(changed)]
	return rest == "" || strings.HasSuffix(rest, "/")
}

// MatchFuncFor returns the MatchFunc of a configured policy.
func MatchFuncFor(policy string) (MatchFunc, error) {
	switch policy {
	case "", domain.MatchSuffix:
		return SuffixMatch, nil
	case domain.MatchSegment:
		return SegmentMatch, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidMatchPolicy, "unsupported match setting"), "match", policy)
	}
}

var _ ports.ImpactResolver = (*Resolver)(nil)

// Resolver implements ports.ImpactResolver.
type Resolver struct {
	match MatchFunc
}

// New creates a Resolver using match. A nil match selects SuffixMatch.
func New(match MatchFunc) *Resolver {
	if match == nil {
		match = SuffixMatch
	}
	return &Resolver{match: match}
}

// Resolve returns the sorted names of the assets built from any changed
// path, plus every asset that transitively references one of them.
func (r *Resolver) Resolve(changed []string, m *domain.DependencyMap) []string {
	result := make([]string, 0)
	if m == nil {
		return result
	}

	impacted := make(domain.StringSet)
	var queue []string

	for _, path := range changed {
		if path == "" {
			continue
		}
		for key, names := range m.Files {
			if !r.match(key, path) {
				continue
			}
			for name := range names {
				if !impacted.Has(name) {
					impacted.Add(name)
					queue = append(queue, name)
				}
			}
		}
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for referrer := range m.AssetRefs[name] {
			if !impacted.Has(referrer) {
				impacted.Add(referrer)
				queue = append(queue, referrer)
			}
		}
	}

	return append(result, impacted.Sorted()...)
}
