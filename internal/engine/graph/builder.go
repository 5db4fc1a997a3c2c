// Package graph builds the dependency map by walking every asset of the catalog.
package graph

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the builder spans.
const TracerName = "go.trai.ch/dumpfiles/graph"

var _ ports.GraphBuilder = (*Builder)(nil)

// Builder implements ports.GraphBuilder.
type Builder struct {
	catalog      ports.AssetCatalog
	materializer ports.Materializer
}

// New creates a Builder.
func New(catalog ports.AssetCatalog, materializer ports.Materializer) *Builder {
	return &Builder{
		catalog:      catalog,
		materializer: materializer,
	}
}

// frame is a pending unit of the walk: an asset and, for leaves, the index of
// the first transform of its chain that has not been inspected yet.
type frame struct {
	asset domain.Asset
	next  int
}

// Build reloads the catalog and walks every asset. Assets whose walk fails
// contribute nothing; their errors are joined into the returned error while
// the map of the remaining assets is still returned.
func (b *Builder) Build(ctx context.Context) (*domain.DependencyMap, error) {
	ctx, span := otel.Tracer(TracerName).Start(ctx, "graph.build")
	defer span.End()

	names, err := b.loadNames()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	m := domain.NewDependencyMap()
	var errs []error

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		staged, err := b.walk(ctx, name)
		if err != nil {
			errs = append(errs, errors.Join(
				domain.ErrAssetBuildFailed,
				zerr.With(zerr.Wrap(err, "dependency walk aborted"), "asset", name),
			))
			continue
		}
		m.Merge(staged)
	}

	span.SetAttributes(
		attribute.Int("assets", len(names)),
		attribute.Int("files", len(m.Files)),
		attribute.Int("failed", len(errs)),
	)

	if err := errors.Join(errs...); err != nil {
		span.SetStatus(codes.Error, "some assets failed")
		return m, err
	}
	return m, nil
}

func (b *Builder) loadNames() ([]string, error) {
	if err := b.catalog.Reload(); err != nil {
		return nil, catalogErr(err)
	}
	names, err := b.catalog.Names()
	if err != nil {
		return nil, catalogErr(err)
	}
	return names, nil
}

func catalogErr(err error) error {
	if errors.Is(err, domain.ErrCatalogLoadFailed) {
		return err
	}
	return errors.Join(domain.ErrCatalogLoadFailed, err)
}

// walk records the dependencies of one asset into a private map.
func (b *Builder) walk(ctx context.Context, name string) (*domain.DependencyMap, error) {
	ctx, span := otel.Tracer(TracerName).Start(ctx, "graph.asset",
		trace.WithAttributes(attribute.String("asset", name)))
	defer span.End()

	root, err := b.catalog.Get(name)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	staged := domain.NewDependencyMap()
	visited := make(map[string]struct{})
	stack := []frame{{asset: root}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch a := f.asset.(type) {
		case domain.Composite:
			stack = pushReversed(stack, a.Children)

		case domain.Reference:
			staged.AddRef(a.Target, name)

		case domain.Leaf:
			if f.next == 0 {
				key := leafKey(a)
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
			}

			j := b.nextExtractor(a.Transforms, f.next)
			if j < 0 {
				staged.AddFile(a.SourceKey(), name)
				continue
			}

			content, err := b.materializer.Load(ctx, a.WithTransforms(a.Transforms[:j]))
			if err != nil {
				span.RecordError(err)
				return nil, err
			}
			children, err := b.materializer.ExtractChildren(ctx, a.Transforms[j], content, a.SourceDir())
			if err != nil {
				span.RecordError(err)
				return nil, err
			}

			stack = append(stack, frame{asset: a, next: j + 1})
			stack = pushReversed(stack, children)
		}
	}

	return staged, nil
}

func (b *Builder) nextExtractor(chain []string, from int) int {
	for j := from; j < len(chain); j++ {
		if b.materializer.CanExtract(chain[j]) {
			return j
		}
	}
	return -1
}

// pushReversed pushes assets so that they pop in their original order.
func pushReversed(stack []frame, assets []domain.Asset) []frame {
	for i := len(assets) - 1; i >= 0; i-- {
		stack = append(stack, frame{asset: assets[i]})
	}
	return stack
}

func leafKey(l domain.Leaf) string {
	return l.SourceKey() + "\x00" + strings.Join(l.Transforms, "\x00")
}
