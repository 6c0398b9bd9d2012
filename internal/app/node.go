package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sweep/internal/adapters/config"
	"go.trai.ch/sweep/internal/adapters/links"
	"go.trai.ch/sweep/internal/adapters/logger"
	"go.trai.ch/sweep/internal/adapters/store"
	"go.trai.ch/sweep/internal/adapters/transport"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
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
			store.NodeID,
			links.NodeID,
			transport.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	contentStore, err := graft.Dep[ports.ContentStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.LinkResolver](ctx)
	if err != nil {
		return nil, err
	}

	purger, err := graft.Dep[ports.CachePurger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, contentStore, resolver, purger, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Settings: settings,
	}, nil
}
