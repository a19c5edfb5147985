package ports

import (
	"context"

	"go.trai.ch/crucible/internal/core/domain"
)

// BundleGenerator assembles the composite JavaScript bundle for a package
// set. The target directory is passed explicitly; implementations must not
// rely on or mutate the process working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type BundleGenerator interface {
	// Generate stages the packages and produces the bundle under targetDir.
	Generate(ctx context.Context, packages domain.ReleaseSet, targetDir string) error
}
