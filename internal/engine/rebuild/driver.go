// Package rebuild dumps the assets affected by changed source paths.
package rebuild

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the driver spans.
const TracerName = "go.trai.ch/dumpfiles/rebuild"

var _ ports.RebuildDriver = (*Driver)(nil)

// Driver implements ports.RebuildDriver.
type Driver struct {
	cache        ports.DependencyMapCache
	resolver     ports.ImpactResolver
	materializer ports.Materializer
	logger       ports.Logger
}

// New creates a Driver.
func New(
	cache ports.DependencyMapCache,
	resolver ports.ImpactResolver,
	materializer ports.Materializer,
	logger ports.Logger,
) *Driver {
	return &Driver{
		cache:        cache,
		resolver:     resolver,
		materializer: materializer,
		logger:       logger,
	}
}

// DumpForChanges dumps every asset impacted by paths.
//
// When no asset is impacted the dependency map is rebuilt once and the paths
// are resolved again, since a changed path may belong to a file the map has
// not seen yet. A failing asset does not stop the others.
func (d *Driver) DumpForChanges(ctx context.Context, paths []string, force bool) domain.RebuildResult {
	ctx, span := otel.Tracer(TracerName).Start(ctx, "rebuild.dump_for_changes",
		trace.WithAttributes(attribute.StringSlice("paths", paths), attribute.Bool("force", force)))
	defer span.End()

	var result domain.RebuildResult

	m, mapErr := d.cache.Get(ctx, force)
	if m == nil {
		if mapErr != nil {
			result.Errors = append(result.Errors, mapErr)
		}
		span.SetStatus(codes.Error, "dependency map unavailable")
		return result
	}

	names := d.resolver.Resolve(paths, m)
	if len(names) == 0 {
		d.logger.Debug(fmt.Sprintf("no asset uses %s, rebuilding dependency map", strings.Join(paths, ", ")))

		// The rebuilt map supersedes the first one, and so do its errors.
		m, mapErr = d.cache.Get(ctx, true)
		if m != nil {
			names = d.resolver.Resolve(paths, m)
		}
	}
	if mapErr != nil {
		result.Errors = append(result.Errors, mapErr)
	}

	span.SetAttributes(attribute.StringSlice("assets", names))

	for _, name := range names {
		if err := d.materializer.Dump(ctx, name); err != nil {
			result.Errors = append(result.Errors, errors.Join(
				domain.ErrMaterializationFailed,
				zerr.With(zerr.Wrap(err, "dump aborted"), "asset", name),
			))
			continue
		}
		result.Succeeded = append(result.Succeeded, name)
	}

	if len(result.Errors) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d errors", len(result.Errors)))
	}
	return result
}
