package interfaces

import (
	"context"

	"github.com/m-mizutani/cutter/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// ReleaseUseCase runs the release pipeline for one request
type ReleaseUseCase interface {
	Execute(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error)
}

// VersionResolver resolves the current and upcoming versions through the
// external version helper
type VersionResolver interface {
	Resolve(ctx context.Context) (*model.VersionPair, error)
}

// ChangelogGenerator produces the release notes body for a version pair
type ChangelogGenerator interface {
	Generate(ctx context.Context, versions *model.VersionPair, repo *model.RepoState) (*model.Changelog, error)
}
