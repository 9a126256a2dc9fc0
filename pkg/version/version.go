// Package version exposes the build version of ecoadvisor.
package version

import "github.com/Masterminds/semver/v3"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/ecoadvisor/pkg/version.version=v1.0.0"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "v0.1.0-dev"

// GetVersion returns the build version without a leading "v". A version that
// is not valid semver is returned unchanged.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

// IsRelease reports whether the build version is a semver release without a
// prerelease suffix.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	return err == nil && v.Prerelease() == ""
}
