package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sweep/internal/adapters/config"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// NodeID is the unique identifier for the content store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.ContentStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ContentStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return Open(settings.StoreDSN)
		},
	})
}
