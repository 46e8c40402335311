package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/artcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[*metrics.Collector](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, tracer, collector), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}
