package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPackageRef is returned when a package reference string cannot be parsed.
	ErrInvalidPackageRef = zerr.New("invalid package reference")

	// ErrInvalidDescriptor is returned when an app descriptor string cannot be parsed.
	ErrInvalidDescriptor = zerr.New("invalid app descriptor")

	// ErrDuplicatePackage is returned when two refs in a release set share an identity.
	ErrDuplicatePackage = zerr.New("duplicate package identity")

	// ErrUnknownDeployment is returned when a deployment name is not configured.
	ErrUnknownDeployment = zerr.New("unknown deployment")

	// ErrInvalidRollout is returned when a rollout percentage is outside 1-100.
	ErrInvalidRollout = zerr.New("rollout must be between 1 and 100")

	// ErrInvalidTargetVersion is returned when a target binary version is not a valid semver constraint.
	ErrInvalidTargetVersion = zerr.New("invalid target binary version")

	// ErrReleaseNotFound is returned when a deployment has no recorded release.
	ErrReleaseNotFound = zerr.New("release not found")

	// ErrTransactionClosed is returned when a committed or discarded cauldron transaction is reused.
	ErrTransactionClosed = zerr.New("cauldron transaction closed")

	// ErrReleaseAborted is returned when the user declines the release confirmation.
	ErrReleaseAborted = zerr.New("release aborted")
)

// File system permissions for artifacts written by the CLI.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)
