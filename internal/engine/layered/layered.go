// Package layered combines the memory and disk caches into the cache seen by the
// compilation system: memory first, disk as fallback.
package layered

import (
	"errors"
	"fmt"
	"time"

	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Cache = (*Cache)(nil)

// Cache looks artifacts up in memory first and falls back to disk. A disk hit is
// promoted into memory. Concurrent disk loads of the same key share one read.
type Cache struct {
	memory ports.Cache
	disk   ports.Cache
	logger ports.Logger
	group  singleflight.Group
}

// New creates a layered cache.
func New(memory, disk ports.Cache, logger ports.Logger) *Cache {
	return &Cache{memory: memory, disk: disk, logger: logger}
}

// Get returns the artifact stored under key in either layer.
func (c *Cache) Get(key string, fc ports.FreshnessContext) (*domain.Artifact, bool) {
	if a, ok := c.memory.Get(key, fc); ok {
		return a, true
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		a, ok := c.disk.Get(key, fc)
		if !ok {
			return nil, nil
		}
		if err := c.memory.Put(key, a, a.BuiltAt); err != nil {
			c.logger.Warn(fmt.Sprintf("failed to promote %s into memory: %v", key, err))
		}
		return a, nil
	})

	a, ok := v.(*domain.Artifact)
	return a, ok && a != nil
}

// Put stores the artifact in both layers. Each layer decides from the artifact's
// flags whether it keeps it.
func (c *Cache) Put(key string, a *domain.Artifact, ts time.Time) error {
	err := errors.Join(
		c.memory.Put(key, a, ts),
		c.disk.Put(key, a, ts),
	)
	return zerr.With(err, "key", key)
}
