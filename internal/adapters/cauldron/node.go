package cauldron

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crucible/internal/adapters/config"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

// NodeID is the unique identifier for the cauldron store Graft node.
const NodeID graft.ID = "adapter.cauldron"

func init() {
	graft.Register(graft.Node[ports.Cauldron]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Cauldron, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CauldronPath)
		},
	})
}
