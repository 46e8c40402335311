// Package coordinator owns the state shared by the memory and disk caches:
// the compilation lock and the failed-delete restart trigger.
package coordinator

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/artcache/internal/core/ports"
)

// Coordinator serializes module removal and decides when the process must restart
// to reclaim module files that could not be deleted in place.
type Coordinator struct {
	compilation sync.Mutex

	host      ports.Host
	logger    ports.Logger
	metrics   ports.Metrics
	threshold int

	mu        sync.Mutex
	failed    int
	required  bool
	requested bool
}

// New creates a Coordinator that requires a restart after threshold failed deletes.
func New(host ports.Host, logger ports.Logger, metrics ports.Metrics, threshold int) *Coordinator {
	if threshold < 1 {
		threshold = 1
	}
	return &Coordinator{
		host:      host,
		logger:    logger,
		metrics:   metrics,
		threshold: threshold,
	}
}

// LockCompilation acquires the compilation lock. The returned func releases it
// exactly once no matter how often it is called, so it can be deferred and also
// called early.
func (c *Coordinator) LockCompilation() (unlock func()) {
	c.compilation.Lock()
	var released atomic.Bool
	return func() {
		if released.CompareAndSwap(false, true) {
			c.compilation.Unlock()
		}
	}
}

// ShutdownInitiated reports whether the host is shutting down.
func (c *Coordinator) ShutdownInitiated() bool {
	return c.host.ShutdownInitiated()
}

// RecordFailedDelete counts a module file that could not be deleted.
func (c *Coordinator) RecordFailedDelete() {
	c.mu.Lock()
	c.failed++
	if c.failed >= c.threshold {
		c.required = true
	}
	c.mu.Unlock()

	c.metrics.FailedDelete()
}

// FailedDeletes returns the number of failed module deletes recorded so far.
func (c *Coordinator) FailedDeletes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

// RestartRequired reports whether the failed-delete counter reached the threshold.
func (c *Coordinator) RestartRequired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.required
}

// RequestRestart asks the host to restart the process. Only the first request is forwarded.
// The caller must not hold the compilation lock.
func (c *Coordinator) RequestRestart(reason string) {
	c.mu.Lock()
	if c.requested {
		c.mu.Unlock()
		return
	}
	c.requested = true
	c.mu.Unlock()

	c.logger.Warn(fmt.Sprintf("requesting process restart: %s", reason))
	c.metrics.RestartRequested()
	c.host.RestartProcess(reason)
}

// RestartIfRequired requests a restart when the threshold has been reached.
func (c *Coordinator) RestartIfRequired(reason string) bool {
	if !c.RestartRequired() {
		return false
	}
	c.RequestRestart(reason)
	return true
}
