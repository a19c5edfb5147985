// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crucible/internal/adapters/bundle"
	_ "go.trai.ch/crucible/internal/adapters/cauldron"
	_ "go.trai.ch/crucible/internal/adapters/codepush"
	_ "go.trai.ch/crucible/internal/adapters/config"
	_ "go.trai.ch/crucible/internal/adapters/fs"
	_ "go.trai.ch/crucible/internal/adapters/logger"
	_ "go.trai.ch/crucible/internal/adapters/prompt"
	_ "go.trai.ch/crucible/internal/adapters/registry"
	_ "go.trai.ch/crucible/internal/adapters/shell"
	_ "go.trai.ch/crucible/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/crucible/internal/app"
)
