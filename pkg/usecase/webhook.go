package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
)

type webhookUseCase struct {
	releaseUC    interfaces.ReleaseUseCase
	branchPrefix string
}

// NewWebhook creates a WebhookUseCase that gates incoming events and
// hands qualifying ones to the release pipeline. With a nil releaseUC
// the gate decision is only logged.
func NewWebhook(releaseUC interfaces.ReleaseUseCase, branchPrefix string) interfaces.WebhookUseCase {
	return &webhookUseCase{
		releaseUC:    releaseUC,
		branchPrefix: branchPrefix,
	}
}

// ProcessEvent evaluates the trigger condition and runs the release
// pipeline for merged pre-release pull requests.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"head_branch", event.HeadBranch,
		"merged", event.Merged,
	)

	if !event.IsReleaseTrigger(uc.branchPrefix) {
		logger.Debug("Event does not trigger a release",
			"type", event.Type,
			"action", event.Action,
			"head_branch", event.HeadBranch,
		)
		return nil
	}

	owner, repo := event.OwnerRepo()
	if owner == "" || repo == "" {
		return goerr.New("event has no usable repository name",
			goerr.V("repository", event.Repository))
	}

	if uc.releaseUC == nil {
		logger.Warn("Release pipeline not configured, ignoring qualifying event",
			"repository", event.Repository,
		)
		return nil
	}

	req := &model.ReleaseRequest{
		RunID:      event.ID,
		Trigger:    model.TriggerWebhook,
		Owner:      owner,
		Repo:       repo,
		HeadBranch: event.HeadBranch,
		PRNumber:   event.PRNumber,
	}

	result, err := uc.releaseUC.Execute(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "release run failed",
			goerr.V("run_id", req.RunID),
			goerr.V("repository", event.Repository),
		)
	}

	logger.Info("Release run completed",
		"run_id", req.RunID,
		"tag", result.TagName,
		"url", result.URL,
	)

	return nil
}
