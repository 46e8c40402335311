// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Namespace prefixes every metric name.
const Namespace = "artcache"

var _ ports.Metrics = (*Collector)(nil)

// Collector records cache activity on its own registry.
type Collector struct {
	registry *prometheus.Registry

	lookups         *prometheus.CounterVec
	failedDeletes   prometheus.Counter
	sentinels       prometheus.Counter
	cleanupFailures *prometheus.CounterVec
	restarts        prometheus.Counter
	operations      *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lookups_total",
			Help:      "Cache lookups by layer and result.",
		}, []string{"layer", "result"}),
		failedDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "failed_module_deletes_total",
			Help:      "Compiled modules that could not be deleted because they were in use.",
		}),
		sentinels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sentinels_written_total",
			Help:      "Deferred-deletion markers written.",
		}),
		cleanupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cleanup_failures_total",
			Help:      "Files a cleanup pass could neither remove nor mark.",
		}, []string{"operation"}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "restart_requests_total",
			Help:      "Process restarts requested by the cache.",
		}),
		operations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of traced cache operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"operation"}),
	}

	c.registry.MustRegister(
		c.lookups,
		c.failedDeletes,
		c.sentinels,
		c.cleanupFailures,
		c.restarts,
		c.operations,
	)
	return c
}

// Registry returns the registry holding the cache metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hit records a cache hit on layer.
func (c *Collector) Hit(layer string) {
	c.lookups.WithLabelValues(layer, "hit").Inc()
}

// Miss records a cache miss on layer.
func (c *Collector) Miss(layer string) {
	c.lookups.WithLabelValues(layer, "miss").Inc()
}

// FailedDelete records a module binary that could not be deleted.
func (c *Collector) FailedDelete() {
	c.failedDeletes.Inc()
}

// SentinelWritten records a deferred-deletion marker.
func (c *Collector) SentinelWritten() {
	c.sentinels.Inc()
}

// CleanupFailed records n files a cleanup pass could not handle.
func (c *Collector) CleanupFailed(op string, n int) {
	c.cleanupFailures.WithLabelValues(op).Add(float64(n))
}

// RestartRequested records a restart request.
func (c *Collector) RestartRequested() {
	c.restarts.Inc()
}

// ObserveOperation records the duration of a traced operation.
func (c *Collector) ObserveOperation(op string, d time.Duration) {
	c.operations.WithLabelValues(op).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsServerFailed.Error()), "addr", addr)
	}
}
