package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sweep/internal/adapters/config"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// NodeID is the unique identifier for the cache purger Graft node.
const NodeID graft.ID = "adapter.transport"

func init() {
	graft.Register(graft.Node[ports.CachePurger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CachePurger, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings), nil
		},
	})
}
