package links

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sweep/internal/adapters/config"
	"go.trai.ch/sweep/internal/adapters/store"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// NodeID is the unique identifier for the link resolver Graft node.
const NodeID graft.ID = "adapter.links"

func init() {
	graft.Register(graft.Node[ports.LinkResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, store.NodeID},
		Run: func(ctx context.Context) (ports.LinkResolver, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			contentStore, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(settings, contentStore)
		},
	})
}
