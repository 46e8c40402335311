package ports

import (
	"time"

	"go.trai.ch/artcache/internal/core/domain"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache is the contract shared by the memory and disk layers.
type Cache interface {
	// Get returns the artifact stored under key if it is still valid.
	Get(key string, fc FreshnessContext) (*domain.Artifact, bool)

	// Put stores the artifact under key. ts is the time the artifact was built.
	Put(key string, a *domain.Artifact, ts time.Time) error
}

// ModuleInvalidator evicts everything bound to a compiled module.
type ModuleInvalidator interface {
	InvalidateModule(name string)
}
