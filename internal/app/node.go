package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/crucible/internal/adapters/bundle"
	"go.trai.ch/crucible/internal/adapters/cauldron"
	"go.trai.ch/crucible/internal/adapters/codepush"
	"go.trai.ch/crucible/internal/adapters/config"
	"go.trai.ch/crucible/internal/adapters/fs"
	"go.trai.ch/crucible/internal/adapters/logger"
	"go.trai.ch/crucible/internal/adapters/prompt"
	"go.trai.ch/crucible/internal/adapters/registry"
	"go.trai.ch/crucible/internal/adapters/telemetry/progrock"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. It provides
// controlled access to what the CLI layer needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Config    *domain.Config
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cauldron.NodeID,
			bundle.NodeID,
			codepush.NodeID,
			registry.NodeID,
			prompt.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.Cauldron](ctx)
	if err != nil {
		return nil, err
	}
	generator, err := graft.Dep[ports.BundleGenerator](ctx)
	if err != nil {
		return nil, err
	}
	ota, err := graft.Dep[ports.ReleaseClient](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.VersionResolver](ctx)
	if err != nil {
		return nil, err
	}
	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.BundleHasher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, store, generator, ota, resolver, prompter, hasher, log, telemetry), nil
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
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Config:    cfg,
		Telemetry: telemetry,
	}, nil
}
