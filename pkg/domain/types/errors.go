package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for release pipeline failures. Check with errors.Is().
var (
	// ErrReleaseExists is returned when a release for the computed tag
	// has already been published.
	ErrReleaseExists = goerr.New("release already exists for tag")

	// ErrEmptyVersion is returned when the version helper produces no
	// usable output.
	ErrEmptyVersion = goerr.New("version helper returned empty output")

	// ErrVersionNotAdvanced is returned when the next version does not
	// compare strictly greater than the current one.
	ErrVersionNotAdvanced = goerr.New("next version is not greater than current version")
)
