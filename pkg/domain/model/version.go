package model

import "github.com/Masterminds/semver/v3"

// VersionPair holds the current and upcoming versions resolved by the
// version helper, together with the tag names derived from them.
type VersionPair struct {
	Current *semver.Version
	Next    *semver.Version

	CurrentTag string
	NextTag    string
}

// IsPrerelease reports whether the upcoming version carries a semver
// prerelease suffix (e.g. v2.1.0-rc.1).
func (v *VersionPair) IsPrerelease() bool {
	return v.Next != nil && v.Next.Prerelease() != ""
}
