// Package main is the entry point for the crucible release tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"go.trai.ch/crucible/cmd/crucible/commands"
	"go.trai.ch/crucible/internal/app"
	"go.trai.ch/crucible/internal/core/domain"
	_ "go.trai.ch/crucible/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)

	err = cli.Execute(ctx)
	if closeErr := components.Telemetry.Close(); closeErr != nil {
		components.Logger.Warn("failed to flush telemetry: " + closeErr.Error())
	}
	if err != nil {
		if errors.Is(err, domain.ErrReleaseAborted) {
			components.Logger.Warn("release aborted")
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
