package usecase_test

import (
	"context"
	"errors"

	"github.com/google/go-github/v75/github"

	"github.com/m-mizutani/cutter/pkg/domain/model"
)

// MockCommandRunner records invocations and answers from a script func
type MockCommandRunner struct {
	RunFunc func(ctx context.Context, cmd *model.Command) (string, error)
	Calls   []*model.Command
}

func (m *MockCommandRunner) Run(ctx context.Context, cmd *model.Command) (string, error) {
	m.Calls = append(m.Calls, cmd)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	return "", errors.New("mock not configured")
}

// MockGitHubClient is a mock implementation of GitHubClient
type MockGitHubClient struct {
	GetReleaseByTagFunc func(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error)
	CreateReleaseFunc   func(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error)
	UploadAssetFunc     func(ctx context.Context, owner, repo string, releaseID int64, path string) (*github.ReleaseAsset, error)

	CreatedReleases []*github.RepositoryRelease
	UploadedPaths   []string
}

func (m *MockGitHubClient) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	if m.GetReleaseByTagFunc != nil {
		return m.GetReleaseByTagFunc(ctx, owner, repo, tag)
	}
	return nil, nil
}

func (m *MockGitHubClient) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	m.CreatedReleases = append(m.CreatedReleases, release)
	if m.CreateReleaseFunc != nil {
		return m.CreateReleaseFunc(ctx, owner, repo, release)
	}
	created := *release
	created.ID = github.Ptr(int64(42))
	created.HTMLURL = github.Ptr("https://github.com/" + owner + "/" + repo + "/releases/tag/" + release.GetTagName())
	return &created, nil
}

func (m *MockGitHubClient) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) (*github.ReleaseAsset, error) {
	m.UploadedPaths = append(m.UploadedPaths, path)
	if m.UploadAssetFunc != nil {
		return m.UploadAssetFunc(ctx, owner, repo, releaseID, path)
	}
	return &github.ReleaseAsset{Name: github.Ptr(path)}, nil
}

// MockGitRepo is a mock implementation of GitRepo
type MockGitRepo struct {
	SHA      string
	Tags     map[string]bool
	Commits  int
	HeadErr  error
	TagErr   error
	CountErr error
}

func (m *MockGitRepo) HeadSHA(ctx context.Context) (string, error) {
	return m.SHA, m.HeadErr
}

func (m *MockGitRepo) TagExists(ctx context.Context, name string) (bool, error) {
	return m.Tags[name], m.TagErr
}

func (m *MockGitRepo) CommitsSinceTag(ctx context.Context, tag string) (int, error) {
	return m.Commits, m.CountErr
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	Err     error
	Results []*model.ReleaseResult
}

func (m *MockNotifier) NotifyRelease(ctx context.Context, owner, repo string, result *model.ReleaseResult) error {
	m.Results = append(m.Results, result)
	return m.Err
}

// MockReleaseUseCase records pipeline executions
type MockReleaseUseCase struct {
	ExecuteFunc func(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error)
	Requests    []*model.ReleaseRequest
}

func (m *MockReleaseUseCase) Execute(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	m.Requests = append(m.Requests, req)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, req)
	}
	return &model.ReleaseResult{TagName: "v1.0.0"}, nil
}

// MockVersionResolver returns a fixed version pair
type MockVersionResolver struct {
	Pair *model.VersionPair
	Err  error
}

func (m *MockVersionResolver) Resolve(ctx context.Context) (*model.VersionPair, error) {
	return m.Pair, m.Err
}

// MockChangelogGenerator returns a fixed changelog
type MockChangelogGenerator struct {
	Changelog *model.Changelog
	Err       error
}

func (m *MockChangelogGenerator) Generate(ctx context.Context, versions *model.VersionPair, repo *model.RepoState) (*model.Changelog, error) {
	return m.Changelog, m.Err
}
