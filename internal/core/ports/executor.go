package ports

import "context"

// Executor runs package manager commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command in dir with the given environment overrides
	// in "KEY=VALUE" form. Output streams to the logger.
	Execute(ctx context.Context, dir string, command []string, env []string) error
}
