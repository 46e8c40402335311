package ports

import "go.trai.ch/artcache/internal/core/domain"

// RemoveCallback is invoked exactly once when an entry leaves an ExpiringStore.
// It may run on any goroutine.
type RemoveCallback func(key string, value any, reason domain.RemovalReason)

// ExpiringStore is the generic key-value store backing the memory cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExpiringStore interface {
	// Get returns the value stored under key.
	Get(key string) (any, bool)

	// Insert stores value under key, replacing any existing entry.
	// When dep fires the entry is removed with domain.ReasonDependencyChanged.
	// onRemove may be nil.
	Insert(key string, value any, dep *domain.Signal, prio domain.Priority, onRemove RemoveCallback)

	// Remove deletes the entry under key and returns its value.
	Remove(key string) (any, bool)

	// KeySignal returns a signal that fires when the current entry under key leaves the store.
	// If key is absent the returned signal has already fired.
	KeySignal(key string) *domain.Signal

	// Len returns the number of live entries.
	Len() int
}
