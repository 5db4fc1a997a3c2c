package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider owns the process-wide tracer provider. A disabled provider leaves
// the global no-op provider in place.
type Provider struct {
	tp   *sdktrace.TracerProvider
	prev trace.TracerProvider
}

// NewProvider creates a Provider whose spans are logged through logger.
func NewProvider(logger ports.Logger, enabled bool) *Provider {
	if !enabled {
		return &Provider{}
	}
	return &Provider{
		tp: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(logger))),
	}
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.tp != nil
}

// Install sets the provider as the global tracer provider.
func (p *Provider) Install() {
	if p.tp == nil {
		return
	}
	p.prev = otel.GetTracerProvider()
	otel.SetTracerProvider(p.tp)
}

// Shutdown restores the previous global provider and flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	if p.prev != nil {
		otel.SetTracerProvider(p.prev)
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "failed to shut down tracer provider")
	}
	return nil
}
