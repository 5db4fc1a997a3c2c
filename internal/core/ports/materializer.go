package ports

import (
	"context"

	"go.trai.ch/dumpfiles/internal/core/domain"
)

// Materializer turns assets into content and writes them to disk.
//
//go:generate mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type Materializer interface {
	// Dump renders the named asset and writes it to its output path.
	Dump(ctx context.Context, name string) error

	// Load returns the content of the leaf with its transform chain applied.
	Load(ctx context.Context, leaf domain.Leaf) ([]byte, error)

	// CanExtract reports whether the named transform declares child assets.
	CanExtract(transform string) bool

	// ExtractChildren runs the child extraction of the named transform.
	ExtractChildren(ctx context.Context, transform string, content []byte, sourceDir string) ([]domain.Asset, error)
}
