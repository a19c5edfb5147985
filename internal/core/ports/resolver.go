package ports

import (
	"context"

	"go.trai.ch/crucible/internal/core/domain"
)

// VersionResolver pins unversioned package refs against the package registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type VersionResolver interface {
	// Resolve returns the ref with a concrete version. Already pinned refs
	// pass through unchanged.
	Resolve(ctx context.Context, ref domain.PackageRef) (domain.PackageRef, error)
}
