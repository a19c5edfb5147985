package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Platform is a supported native platform.
type Platform string

const (
	// PlatformAndroid is the Android native platform.
	PlatformAndroid Platform = "android"
	// PlatformIOS is the iOS native platform.
	PlatformIOS Platform = "ios"
)

// AppDescriptor identifies a specific native application version, rendered
// as "app:platform:version" (e.g., "walmart:android:17.8.0").
type AppDescriptor struct {
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
	Version  string   `json:"version"`
}

// ParseAppDescriptor parses a complete "app:platform:version" descriptor.
// The platform must be android or ios and the version strict semver.
func ParseAppDescriptor(s string) (AppDescriptor, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 || parts[0] == "" {
		return AppDescriptor{}, zerr.With(zerr.Wrap(ErrInvalidDescriptor, "want app:platform:version"), "descriptor", s)
	}

	platform := Platform(parts[1])
	if platform != PlatformAndroid && platform != PlatformIOS {
		invalidErr := zerr.With(zerr.Wrap(ErrInvalidDescriptor, "unsupported platform"), "descriptor", s)
		return AppDescriptor{}, zerr.With(invalidErr, "platform", parts[1])
	}

	if _, err := semver.StrictNewVersion(parts[2]); err != nil {
		invalidErr := zerr.With(zerr.Wrap(ErrInvalidDescriptor, "not a strict semver version"), "descriptor", s)
		return AppDescriptor{}, zerr.With(invalidErr, "version", parts[2])
	}

	return AppDescriptor{
		Name:     parts[0],
		Platform: platform,
		Version:  parts[2],
	}, nil
}

// String renders the descriptor in its canonical form.
func (d AppDescriptor) String() string {
	return d.Name + ":" + string(d.Platform) + ":" + d.Version
}
