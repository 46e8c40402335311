package ports

import (
	"time"

	"go.trai.ch/artcache/internal/core/domain"
)

// FreshnessContext answers whether cached artifacts are still current with respect to their inputs.
//
//go:generate mockgen -source=freshness.go -destination=mocks/mock_freshness.go -package=mocks
type FreshnessContext interface {
	// IsUpToDate reports whether the source at virtualPath has not changed since the given time.
	IsUpToDate(virtualPath string, since time.Time) bool

	// Subscribe returns a signal that fires when any of inputs changes after since.
	// A nil signal means no subscription could be obtained.
	Subscribe(inputs []string, since time.Time) (*domain.Signal, error)
}
