package bundle

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/crucible/internal/adapters/config"
	"go.trai.ch/crucible/internal/adapters/logger"
	"go.trai.ch/crucible/internal/adapters/shell"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

const NodeID graft.ID = "adapter.bundle_generator"

func init() {
	graft.Register(graft.Node[ports.BundleGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BundleGenerator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(executor, log, cfg.Packager), nil
		},
	})
}
