// Package app implements the application layer of artcache.
package app

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/artcache/internal/adapters/diskcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/memory"    //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/memstore"  //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/artcache/internal/engine/coordinator"
	"go.trai.ch/artcache/internal/engine/layered"
	"go.trai.ch/artcache/internal/engine/removal"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ConfigLoader
	logger  ports.Logger
	tracer  ports.Tracer
	metrics *metrics.Collector
	workDir string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, logger ports.Logger, tracer ports.Tracer, collector *metrics.Collector) *App {
	return &App{
		loader:  loader,
		logger:  logger,
		tracer:  tracer,
		metrics: collector,
		workDir: ".",
	}
}

// WithWorkDir sets the directory the configuration is discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Stack is the cache assembled from the resolved settings.
type Stack struct {
	Settings    domain.Settings
	Host        *host.Lifecycle
	Coordinator *coordinator.Coordinator
	Store       *memstore.Store
	Memory      *memory.Cache
	Disk        *diskcache.Cache
	Cache       *layered.Cache
	Watcher     *watcher.Watcher // nil unless opened with Watch

	log     ports.Logger
	metrics *metrics.Collector
	closers []func(context.Context) error
}

// OpenOptions configures Open.
type OpenOptions struct {
	// Watch starts a file watcher that provides freshness checks and change subscriptions.
	Watch bool
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Open loads the configuration and assembles the cache.
func (a *App) Open(_ context.Context, opts OpenOptions) (*Stack, error) {
	dir, err := filepath.Abs(a.workDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", a.workDir)
	}

	settings, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if settings.JSONLogs {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	stack := &Stack{Settings: settings, log: a.logger, metrics: a.metrics}
	stack.closers = append(stack.closers, telemetry.Setup(telemetry.NewMetricsBridge(a.metrics, a.logger)))

	stack.Host = host.NewLifecycle(settings.ShadowCopyDir, a.logger)
	stack.Coordinator = coordinator.New(stack.Host, a.logger, a.metrics, settings.RestartThreshold)

	fs := osfs.New(settings.Root)
	remover := removal.New(fs, stack.Coordinator, a.metrics)

	var freshness ports.FreshnessContext
	if opts.Watch {
		w, err := watcher.New(settings.SourceRoot, a.logger)
		if err != nil {
			_ = stack.Close(context.Background())
			return nil, err
		}
		stack.Watcher = w
		freshness = w
		stack.closers = append(stack.closers, func(context.Context) error { return w.Close() })
	}

	stack.Store = memstore.New(settings.IdleTTL)
	stack.Memory = memory.New(memory.Options{
		Store:       stack.Store,
		Graph:       domain.NewDependencyGraph(),
		Freshness:   freshness,
		Coordinator: stack.Coordinator,
		Remover:     remover,
		Logger:      a.logger,
		Metrics:     a.metrics,
		GraphPrefix: settings.GraphPrefix,
	})

	stack.Disk, err = diskcache.New(diskcache.Options{
		FS:              fs,
		Policy:          diskcache.PolicyFor(settings.Mode, settings.Persist),
		Coordinator:     stack.Coordinator,
		Remover:         remover,
		Host:            stack.Host,
		Logger:          a.logger,
		Metrics:         a.metrics,
		Tracer:          a.tracer,
		Invalidator:     stack.Memory,
		RemovablePrefix: settings.RemovablePrefix,
	})
	if err != nil {
		_ = stack.Close(context.Background())
		return nil, err
	}

	stack.Cache = layered.New(stack.Memory, stack.Disk, a.logger)
	return stack, nil
}

// Close releases the resources held by the stack.
func (s *Stack) Close(ctx context.Context) error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// freshness returns the watcher as a freshness context, or nil when none is running.
func (s *Stack) freshness() ports.FreshnessContext {
	if s.Watcher == nil {
		return nil
	}
	return s.Watcher
}
