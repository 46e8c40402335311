package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/artcache/internal/core/ports"
)

// MetricsBridge implements sdktrace.SpanProcessor. It records the duration of every
// ended span and logs spans that ended with an error.
type MetricsBridge struct {
	metrics ports.Metrics
	logger  ports.Logger
}

// NewMetricsBridge returns a new MetricsBridge.
func NewMetricsBridge(metrics ports.Metrics, logger ports.Logger) *MetricsBridge {
	return &MetricsBridge{
		metrics: metrics,
		logger:  logger,
	}
}

// OnStart does nothing.
func (b *MetricsBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *MetricsBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	b.metrics.ObserveOperation(s.Name(), s.EndTime().Sub(s.StartTime()))

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "operation failed"
		}
		b.logger.Error(errors.New(s.Name() + ": " + desc))
	}
}

// ForceFlush does nothing.
func (b *MetricsBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *MetricsBridge) Shutdown(_ context.Context) error {
	return nil
}
