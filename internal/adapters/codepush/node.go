package codepush

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/crucible/internal/adapters/config"
	"go.trai.ch/crucible/internal/adapters/logger"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.release_client"

func init() {
	graft.Register(graft.Node[ports.ReleaseClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseClient, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.ServerURL, cfg.AccessKey, log), nil
		},
	})
}
