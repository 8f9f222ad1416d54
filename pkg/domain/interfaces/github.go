package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines the release-hosting operations consumed by the
// pipeline. The hosting API itself is an external collaborator; this
// interface only mirrors the calls we make against it.
type GitHubClient interface {
	// GetReleaseByTag returns the release for the tag, or nil if none exists
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error)

	// CreateRelease publishes a new release
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error)

	// UploadReleaseAsset attaches a local file to an existing release
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) (*github.ReleaseAsset, error)
}
