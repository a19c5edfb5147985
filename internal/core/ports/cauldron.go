// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crucible/internal/core/domain"
)

// Cauldron is the metadata store tracking native application versions and
// their OTA releases.
//
//go:generate go run go.uber.org/mock/mockgen -source=cauldron.go -destination=mocks/mock_cauldron.go -package=mocks
type Cauldron interface {
	// Begin opens a transaction. All reads and writes go through the
	// transaction and take effect atomically on Commit.
	Begin(ctx context.Context) (CauldronTx, error)
}

// CauldronTx is a single cauldron transaction. Commit and Discard close the
// transaction; any use afterwards fails with ErrTransactionClosed.
type CauldronTx interface {
	// ReleasedPackages returns the package set of the most recent release
	// recorded for the descriptor and deployment. Returns an empty set when
	// no release exists.
	ReleasedPackages(descriptor domain.AppDescriptor, deployment string) (domain.ReleaseSet, error)

	// Releases returns the full release history for the descriptor and
	// deployment, oldest first.
	Releases(descriptor domain.AppDescriptor, deployment string) ([]domain.Release, error)

	// RecordRelease appends a release to the descriptor's history.
	RecordRelease(descriptor domain.AppDescriptor, release domain.Release) error

	// Commit atomically applies all writes of the transaction.
	Commit() error

	// Discard drops the transaction without applying anything.
	Discard()
}
