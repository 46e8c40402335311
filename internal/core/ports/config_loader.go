package ports

import "go.trai.ch/artcache/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and returns the resolved settings.
	Load(cwd string) (domain.Settings, error)
}
