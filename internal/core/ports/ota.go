package ports

import (
	"context"

	"go.trai.ch/crucible/internal/core/domain"
)

// ReleaseClient publishes update bundles to the OTA release service.
//
//go:generate go run go.uber.org/mock/mockgen -source=ota.go -destination=mocks/mock_ota.go -package=mocks
type ReleaseClient interface {
	// Release uploads the bundle at bundleDir and returns the label the
	// service assigned to the release.
	Release(ctx context.Context, bundleDir string, req domain.ReleaseRequest) (string, error)
}
