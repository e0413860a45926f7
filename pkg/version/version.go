package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parse accepts an optional single "v" prefix followed by a strict
// major.minor.patch[-prerelease][+build] version.
func parse(s string) (*semver.Version, bool) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// IsSemVer reports whether s is a valid semantic version, with or without a
// leading "v".
func IsSemVer(s string) bool {
	_, ok := parse(s)
	return ok
}

// IsPrerelease reports whether s is a valid version carrying a prerelease
// component. Build metadata alone does not make a prerelease.
func IsPrerelease(s string) bool {
	v, ok := parse(s)
	return ok && v.Prerelease() != ""
}

// RemovePrefix returns the canonical version string without the "v" prefix, or
// s unchanged when it is not a valid version. Build metadata is dropped.
func RemovePrefix(s string) string {
	v, ok := parse(s)
	if !ok {
		return s
	}
	canonical := fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	if pre := v.Prerelease(); pre != "" {
		canonical += "-" + pre
	}
	return canonical
}
