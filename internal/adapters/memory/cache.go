// Package memory implements the in-memory cache layer with cascading eviction
// along the compiled-module dependency graph.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
)

// Layer is the metrics label of the memory cache.
const Layer = "memory"

// entry is the value stored for an artifact.
type entry struct {
	artifact *domain.Artifact
	// subscribed is set when the entry is invalidated by a live change subscription
	// on its inputs, so Get does not need to ask the freshness context.
	subscribed bool
}

// marker is the value stored under a module marker key.
type marker struct {
	module domain.Module
}

// Cache is the memory layer. It implements ports.Cache and ports.ModuleInvalidator.
type Cache struct {
	store       ports.ExpiringStore
	graph       *domain.DependencyGraph
	freshness   ports.FreshnessContext
	coordinator ports.Coordinator
	remover     ports.FileRemover
	logger      ports.Logger
	metrics     ports.Metrics
	prefix      string

	markerMu sync.Mutex
}

// Options groups the collaborators of a memory Cache.
type Options struct {
	Store       ports.ExpiringStore
	Graph       *domain.DependencyGraph
	Freshness   ports.FreshnessContext
	Coordinator ports.Coordinator
	Remover     ports.FileRemover
	Logger      ports.Logger
	Metrics     ports.Metrics
	// GraphPrefix is the name prefix of modules tracked in the dependency graph.
	GraphPrefix string
}

// New creates a memory Cache.
func New(opts Options) *Cache {
	graph := opts.Graph
	if graph == nil {
		graph = domain.NewDependencyGraph()
	}
	prefix := opts.GraphPrefix
	if prefix == "" {
		prefix = domain.DefaultGraphPrefix
	}
	return &Cache{
		store:       opts.Store,
		graph:       graph,
		freshness:   opts.Freshness,
		coordinator: opts.Coordinator,
		remover:     opts.Remover,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		prefix:      prefix,
	}
}

// Graph returns the dependency graph maintained by the cache.
func (c *Cache) Graph() *domain.DependencyGraph {
	return c.graph
}

// Get returns the artifact stored under key. Entries without a live change
// subscription are checked against fc and evicted when stale.
func (c *Cache) Get(key string, fc ports.FreshnessContext) (*domain.Artifact, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		c.metrics.Miss(Layer)
		return nil, false
	}
	e, ok := v.(*entry)
	if !ok {
		c.metrics.Miss(Layer)
		return nil, false
	}

	if !e.subscribed && fc != nil && e.artifact.VirtualPath != "" && !fc.IsUpToDate(e.artifact.VirtualPath, e.artifact.BuiltAt) {
		c.store.Remove(key)
		c.metrics.Miss(Layer)
		return nil, false
	}

	c.metrics.Hit(Layer)
	return e.artifact, true
}

// Put caches the artifact in memory when it asks for it. Artifacts bound to a module
// are chained to the module's marker entry so that evicting the module evicts them.
func (c *Cache) Put(key string, a *domain.Artifact, ts time.Time) error {
	var dep *domain.Signal
	subscribed := false
	if a.WantsSubscription() && c.freshness != nil {
		sig, err := c.freshness.Subscribe(a.Inputs, ts)
		if err != nil {
			c.logger.Warn(fmt.Sprintf("no change subscription for %s: %v", key, err))
		} else if sig != nil {
			dep = sig
			subscribed = true
		}
	}

	if !a.CacheToMemory {
		return nil
	}

	stored := *a
	if stored.BuiltAt.IsZero() {
		stored.BuiltAt = ts
	}

	if stored.HasModule() {
		dep = domain.AnySignal(dep, c.ensureMarker(*stored.Module))
	}

	prio := domain.PriorityPinned
	if stored.IsUnloadable {
		prio = domain.PriorityDefault
	}

	var onRemove ports.RemoveCallback
	if stored.RestartProcessOnChange || stored.HasModule() {
		onRemove = c.onRemove
	}

	c.store.Insert(key, &entry{artifact: &stored, subscribed: subscribed}, dep, prio, onRemove)
	return nil
}

// OnModuleLoaded records the loaded module as a dependent of each referenced module
// that carries the graph prefix.
func (c *Cache) OnModuleLoaded(ev domain.ModuleLoadEvent) {
	if !strings.HasPrefix(ev.Name, c.prefix) {
		return
	}
	for _, ref := range ev.References {
		if ref != ev.Name && strings.HasPrefix(ref, c.prefix) {
			c.graph.AddDependent(ref, ev.Name)
		}
	}
}

// Listen consumes module load events until ctx is done or events is closed.
func (c *Cache) Listen(ctx context.Context, events <-chan domain.ModuleLoadEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.OnModuleLoaded(ev)
		}
	}
}

// InvalidateModule evicts the marker of the named module and of every module that
// transitively depends on it, which evicts every entry bound to them.
func (c *Cache) InvalidateModule(name string) {
	c.evictMarkers(name)
}

// ensureMarker inserts the pinned marker entry for m if none exists and returns the
// signal that fires when it leaves the store.
func (c *Cache) ensureMarker(m domain.Module) *domain.Signal {
	key := m.CacheKey()

	c.markerMu.Lock()
	defer c.markerMu.Unlock()

	if _, ok := c.store.Get(key); !ok {
		c.store.Insert(key, &marker{module: m}, nil, domain.PriorityPinned, nil)
	}
	return c.store.KeySignal(key)
}

func (c *Cache) onRemove(key string, value any, reason domain.RemovalReason) {
	if reason != domain.ReasonDependencyChanged {
		return
	}
	e, ok := value.(*entry)
	if !ok {
		return
	}
	a := e.artifact

	if c.coordinator.ShutdownInitiated() {
		if a.HasModule() {
			c.remover.MarkModuleForDeletion(*a.Module)
		}
		return
	}

	if a.HasModule() {
		c.evictMarkers(a.Module.Name)
		if a.Module.Path != "" {
			if status := c.remover.RemoveModuleFile(a.Module.Path); status == domain.DeleteLocked {
				c.logger.Warn(fmt.Sprintf("module %s is in use, marked for deletion", a.Module.Name))
			}
		}
	}

	if a.RestartProcessOnChange {
		c.coordinator.RequestRestart(fmt.Sprintf("%s changed", key))
	}
}

// evictMarkers prunes name and its transitive dependents from the graph under the
// compilation lock, then removes their markers once the lock is released. Removing a
// marker fires the callbacks of the entries bound to it, which may take the
// compilation lock again.
func (c *Cache) evictMarkers(name string) {
	unlock := c.coordinator.LockCompilation()
	dependents := c.graph.Prune(name)
	unlock()

	c.store.Remove(domain.ModuleCacheKey(name))
	for _, dep := range dependents {
		c.store.Remove(domain.ModuleCacheKey(dep))
	}
}
