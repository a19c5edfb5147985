// Package shell provides the package manager executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command in dir. The environment is the process
// environment with env entries appended as overrides. The working directory
// is always passed explicitly; the process-wide working directory is never
// touched.
func (e *Executor) Execute(ctx context.Context, dir string, command []string, env []string) error {
	if len(command) == 0 {
		return nil
	}

	name := command[0]
	args := command[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from trusted config
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	// A telemetry vertex on the context takes over the output streams;
	// otherwise they go to the logger.
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = vertex.Stdout()
		cmd.Stderr = vertex.Stderr()
	} else {
		cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
		cmd.Stderr = &logWriter{logger: e.logger, level: "error"}
	}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}

		failedErr := zerr.With(zerr.Wrap(err, "command failed"), "command", name)
		return zerr.With(failedErr, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
