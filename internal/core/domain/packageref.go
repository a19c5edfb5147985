// Package domain contains the core types for OTA release preparation.
package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// PackageRef identifies a MiniApp package: an optional npm scope, a name,
// and a version. Two refs denote the same package when scope and name match,
// regardless of version.
type PackageRef struct {
	// Scope is the npm scope without the leading "@" (e.g., "acme").
	// Empty for unscoped packages.
	Scope string `json:"scope,omitempty"`

	// Name is the package name (e.g., "checkout-miniapp").
	Name string `json:"name"`

	// Version is the pinned semver version (e.g., "1.2.3").
	// Empty when the ref has not been pinned yet.
	Version string `json:"version,omitempty"`
}

// ParsePackageRef parses a package reference of the form
// "[@scope/]name[@version]". The version, when present, must be valid semver.
// Parsing happens once at the boundary; the resulting value is never
// re-parsed downstream.
func ParsePackageRef(s string) (PackageRef, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return PackageRef{}, zerr.With(zerr.Wrap(ErrInvalidPackageRef, "empty ref"), "ref", s)
	}

	var ref PackageRef
	rest := spec
	if strings.HasPrefix(rest, "@") {
		scope, remainder, ok := strings.Cut(rest[1:], "/")
		if !ok || scope == "" {
			return PackageRef{}, zerr.With(zerr.Wrap(ErrInvalidPackageRef, "malformed scope"), "ref", s)
		}
		ref.Scope = scope
		rest = remainder
	}

	name, version, pinned := strings.Cut(rest, "@")
	if name == "" || strings.Contains(name, "/") {
		return PackageRef{}, zerr.With(zerr.Wrap(ErrInvalidPackageRef, "malformed name"), "ref", s)
	}
	ref.Name = name

	if pinned {
		if _, err := semver.NewVersion(version); err != nil {
			invalidErr := zerr.With(zerr.Wrap(ErrInvalidPackageRef, "not a semver version"), "ref", s)
			return PackageRef{}, zerr.With(invalidErr, "version", version)
		}
		ref.Version = version
	}

	return ref, nil
}

// Identity returns the version-independent identity of the package,
// "@scope/name" for scoped packages and "name" otherwise.
func (r PackageRef) Identity() string {
	if r.Scope != "" {
		return "@" + r.Scope + "/" + r.Name
	}
	return r.Name
}

// SameIdentity reports whether both refs denote the same package.
func (r PackageRef) SameIdentity(o PackageRef) bool {
	return r.Scope == o.Scope && r.Name == o.Name
}

// Pinned reports whether the ref carries a concrete version.
func (r PackageRef) Pinned() bool {
	return r.Version != ""
}

// String renders the ref in its canonical "[@scope/]name[@version]" form.
func (r PackageRef) String() string {
	if r.Version == "" {
		return r.Identity()
	}
	return r.Identity() + "@" + r.Version
}
