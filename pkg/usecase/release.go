package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
	"github.com/m-mizutani/cutter/pkg/domain/types"
)

type releaseUseCase struct {
	githubClient interfaces.GitHubClient
	versions     interfaces.VersionResolver
	changelog    interfaces.ChangelogGenerator
	publish      model.PublishConfig

	gitRepo  interfaces.GitRepo
	notifier interfaces.Notifier
}

// ReleaseOption configures optional collaborators of the release pipeline
type ReleaseOption func(*releaseUseCase)

// WithGitRepo attaches a local checkout. It contributes the release
// target commitish and the commit count in the release body.
func WithGitRepo(repo interfaces.GitRepo) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.gitRepo = repo
	}
}

// WithNotifier announces published releases to an external channel.
func WithNotifier(n interfaces.Notifier) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.notifier = n
	}
}

// NewRelease creates the release pipeline use case.
func NewRelease(
	githubClient interfaces.GitHubClient,
	versions interfaces.VersionResolver,
	changelog interfaces.ChangelogGenerator,
	publish model.PublishConfig,
	opts ...ReleaseOption,
) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		githubClient: githubClient,
		versions:     versions,
		changelog:    changelog,
		publish:      publish,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the pipeline: resolve versions, inspect the checkout,
// generate the changelog, publish the release, attach assets, notify.
// Any step error aborts the run; there are no retries.
func (uc *releaseUseCase) Execute(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Starting release run",
		"run_id", req.RunID,
		"trigger", req.Trigger,
		"owner", req.Owner,
		"repo", req.Repo,
		"dry_run", req.DryRun,
	)

	versions, err := uc.versions.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	repoState := uc.inspectCheckout(ctx, versions)

	changelog, err := uc.changelog.Generate(ctx, versions, repoState)
	if err != nil {
		return nil, err
	}

	existing, err := uc.githubClient.GetReleaseByTag(ctx, req.Owner, req.Repo, versions.NextTag)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, goerr.Wrap(types.ErrReleaseExists, "refusing to publish",
			goerr.V("tag", versions.NextTag),
			goerr.V("url", existing.GetHTMLURL()),
		)
	}

	result := &model.ReleaseResult{
		TagName:    versions.NextTag,
		Name:       uc.publish.TitlePrefix + versions.NextTag,
		Body:       changelog.Body,
		Prerelease: versions.IsPrerelease(),
		DryRun:     req.DryRun,
	}

	if req.DryRun {
		logger.Info("Dry run: skipping release publication",
			"tag", result.TagName,
			"body_length", len(result.Body),
			"asset_patterns", uc.publish.Assets,
		)
		return result, nil
	}

	release := &github.RepositoryRelease{
		TagName:    github.Ptr(result.TagName),
		Name:       github.Ptr(result.Name),
		Body:       github.Ptr(result.Body),
		Draft:      github.Ptr(uc.publish.Draft),
		Prerelease: github.Ptr(result.Prerelease),
	}
	if repoState.HasCheckout && repoState.HeadSHA != "" {
		release.TargetCommitish = github.Ptr(repoState.HeadSHA)
	}

	created, err := uc.githubClient.CreateRelease(ctx, req.Owner, req.Repo, release)
	if err != nil {
		return nil, err
	}
	result.URL = created.GetHTMLURL()

	result.Assets = uc.uploadAssets(ctx, req, created.GetID())

	logger.Info("Published release",
		"tag", result.TagName,
		"url", result.URL,
		"assets", len(result.Assets),
		"prerelease", result.Prerelease,
	)

	if uc.notifier != nil {
		if err := uc.notifier.NotifyRelease(ctx, req.Owner, req.Repo, result); err != nil {
			logger.Warn("Failed to send release notification", "error", err)
		}
	}

	return result, nil
}

// inspectCheckout gathers optional information from the local checkout.
// A missing or unreadable checkout degrades the release rather than
// failing it.
func (uc *releaseUseCase) inspectCheckout(ctx context.Context, versions *model.VersionPair) *model.RepoState {
	logger := ctxlog.From(ctx)

	state := &model.RepoState{}
	if uc.gitRepo == nil {
		return state
	}
	state.HasCheckout = true

	sha, err := uc.gitRepo.HeadSHA(ctx)
	if err != nil {
		logger.Warn("Failed to resolve HEAD of local checkout", "error", err)
	} else {
		state.HeadSHA = sha
	}

	exists, err := uc.gitRepo.TagExists(ctx, versions.CurrentTag)
	if err != nil {
		logger.Warn("Failed to look up current tag", "error", err, "tag", versions.CurrentTag)
	}
	state.CurrentTagExists = exists

	if exists {
		count, err := uc.gitRepo.CommitsSinceTag(ctx, versions.CurrentTag)
		if err != nil {
			logger.Warn("Failed to count commits since tag", "error", err, "tag", versions.CurrentTag)
			state.CurrentTagExists = false
		} else {
			state.CommitsSinceTag = count
		}
	}

	return state
}

// uploadAssets expands the configured glob patterns and uploads every
// matching regular file. Missing files are logged and skipped so a
// release without lock files still succeeds.
func (uc *releaseUseCase) uploadAssets(ctx context.Context, req *model.ReleaseRequest, releaseID int64) []string {
	logger := ctxlog.From(ctx)

	var uploaded []string
	for _, pattern := range uc.publish.Assets {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			logger.Warn("Invalid asset pattern", "pattern", pattern, "error", err)
			continue
		}
		if len(matches) == 0 {
			logger.Warn("Asset pattern matched no files", "pattern", pattern)
			continue
		}

		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				logger.Warn("Skipping asset", "path", path, "error", err)
				continue
			}

			asset, err := uc.githubClient.UploadReleaseAsset(ctx, req.Owner, req.Repo, releaseID, path)
			if err != nil {
				logger.Warn("Failed to upload asset", "path", path, "error", err)
				continue
			}

			logger.Debug("Uploaded release asset", "name", asset.GetName(), "path", path)
			uploaded = append(uploaded, filepath.Base(path))
		}
	}

	return uploaded
}
