// Package memstore implements ports.ExpiringStore on top of ttlcache.
package memstore

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
)

// DefaultIdleTTL is the sliding expiration of unpinned entries.
const DefaultIdleTTL = 20 * time.Minute

type entry struct {
	key      string
	value    any
	signal   *domain.Signal
	onRemove ports.RemoveCallback
	removed  atomic.Bool

	mu      sync.Mutex
	stopDep func()
}

// Store is an expiring key-value store. Pinned entries never expire; default entries
// are scavenged after sitting unused for the idle TTL.
type Store struct {
	mu      sync.Mutex
	cache   *ttlcache.Cache[string, *entry]
	idleTTL time.Duration
}

// New creates a Store. A non-positive idleTTL selects DefaultIdleTTL.
func New(idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	s := &Store{
		cache:   ttlcache.New[string, *entry](ttlcache.WithTTL[string, *entry](idleTTL)),
		idleTTL: idleTTL,
	}
	// Deletions are finished synchronously by Remove and Insert, so only expiry
	// is handled here. It is moved off the eviction path because finishing an
	// entry can cascade back into the cache.
	s.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *entry]) {
		if reason == ttlcache.EvictionReasonExpired {
			go s.finish(item.Value(), domain.ReasonUnderused)
		}
	})
	return s
}

// Run scavenges expired entries until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.cache.Stop()
	}()
	s.cache.Start()
	return nil
}

// DeleteExpired scavenges expired entries immediately.
func (s *Store) DeleteExpired() {
	s.cache.DeleteExpired()
}

// Get returns the value stored under key and refreshes its idle timer.
func (s *Store) Get(key string) (any, bool) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value().value, true
}

// Insert stores value under key. An existing entry is removed with domain.ReasonRemoved.
// If dep has already fired the new entry is removed straight away.
func (s *Store) Insert(key string, value any, dep *domain.Signal, prio domain.Priority, onRemove ports.RemoveCallback) {
	e := &entry{
		key:      key,
		value:    value,
		signal:   domain.NewSignal(),
		onRemove: onRemove,
	}

	ttl := s.idleTTL
	if prio == domain.PriorityPinned {
		ttl = ttlcache.NoTTL
	}

	s.mu.Lock()
	old := s.current(key)
	s.cache.Set(key, e, ttl)
	s.mu.Unlock()

	if old != nil {
		s.finish(old, domain.ReasonRemoved)
	}

	if dep == nil {
		return
	}
	stop := dep.OnFire(func() { s.remove(e, domain.ReasonDependencyChanged) })
	e.mu.Lock()
	if e.removed.Load() {
		e.mu.Unlock()
		stop()
		return
	}
	e.stopDep = stop
	e.mu.Unlock()
}

// Remove deletes the entry under key.
func (s *Store) Remove(key string) (any, bool) {
	s.mu.Lock()
	e := s.current(key)
	if e == nil {
		s.mu.Unlock()
		return nil, false
	}
	s.cache.Delete(key)
	s.mu.Unlock()

	s.finish(e, domain.ReasonRemoved)
	return e.value, true
}

// KeySignal returns the signal that fires when the current entry under key leaves the store.
func (s *Store) KeySignal(key string) *domain.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.current(key); e != nil {
		return e.signal
	}
	return domain.FiredSignal()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return s.cache.Len()
}

func (s *Store) current(key string) *entry {
	item := s.cache.Get(key, ttlcache.WithDisableTouchOnHit[string, *entry]())
	if item == nil {
		return nil
	}
	return item.Value()
}

// remove deletes e if it is still the entry stored under its key and finishes it.
func (s *Store) remove(e *entry, reason domain.RemovalReason) {
	s.mu.Lock()
	if s.current(e.key) == e {
		s.cache.Delete(e.key)
	}
	s.mu.Unlock()

	s.finish(e, reason)
}

// finish runs the removal side effects of e exactly once.
func (s *Store) finish(e *entry, reason domain.RemovalReason) {
	if !e.removed.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	stop := e.stopDep
	e.stopDep = nil
	e.mu.Unlock()
	if stop != nil {
		stop()
	}

	e.signal.Fire()
	if e.onRemove != nil {
		e.onRemove(e.key, e.value, reason)
	}
}
