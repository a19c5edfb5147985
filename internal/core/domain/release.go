package domain

import "time"

// RolloutFull is the default rollout percentage when none is requested.
const RolloutFull = 100

// ReleaseRequest carries everything the OTA service needs to publish an
// update bundle.
type ReleaseRequest struct {
	Descriptor AppDescriptor

	// Deployment is the named deployment track (e.g., "Staging").
	Deployment string

	// TargetBinaryVersion is a semver constraint selecting the native binary
	// versions that may install this update (e.g., "~17.8.0").
	TargetBinaryVersion string

	// Mandatory marks the update as required on the client.
	Mandatory bool

	// Rollout is the percentage of clients eligible for the update, 1-100.
	Rollout int

	// PackageHash is the content hash of the generated bundle tree.
	PackageHash string
}

// Release is a recorded OTA release as persisted in the cauldron.
type Release struct {
	// Label is the server-assigned release label (e.g., "v12").
	Label string `json:"label"`

	Deployment          string     `json:"deployment"`
	TargetBinaryVersion string     `json:"targetBinaryVersion"`
	Packages            ReleaseSet `json:"packages"`
	PackageHash         string     `json:"packageHash"`
	Mandatory           bool       `json:"mandatory"`
	Rollout             int        `json:"rollout"`
	CreatedAt           time.Time  `json:"createdAt"`
}
