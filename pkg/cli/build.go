package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/cli/config"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/infra/command"
	"github.com/m-mizutani/cutter/pkg/infra/gitrepo"
	"github.com/m-mizutani/cutter/pkg/usecase"
)

// buildReleaseUseCase assembles the release pipeline from configuration.
// Shared between the serve and run commands.
func buildReleaseUseCase(
	ctx context.Context,
	githubCfg *config.GitHub,
	releaseCfg *config.Release,
	geminiCfg *config.Gemini,
	slackCfg *config.Slack,
) (interfaces.ReleaseUseCase, error) {
	logger := ctxlog.From(ctx)

	pipeline, err := config.LoadPipeline(releaseCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	githubClient, err := githubCfg.Configure()
	if err != nil {
		return nil, err
	}

	runner := command.NewRunner()
	versionUC := usecase.NewVersionResolver(runner, pipeline.Version)

	var changelogOpts []usecase.ChangelogOption
	if geminiCfg.Enabled() {
		llmClient, err := geminiCfg.Configure(ctx)
		if err != nil {
			return nil, err
		}
		polisher, err := usecase.NewNotesPolisher(llmClient)
		if err != nil {
			return nil, err
		}
		changelogOpts = append(changelogOpts, usecase.WithNotesPolisher(polisher))
		logger.Info("Release notes polishing enabled", "model", geminiCfg.Model)
	}
	changelogUC := usecase.NewChangelogGenerator(runner, pipeline.Changelog, changelogOpts...)

	var releaseOpts []usecase.ReleaseOption
	if releaseCfg.RepoPath != "" {
		repo, err := gitrepo.Open(releaseCfg.RepoPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open local checkout",
				goerr.V("path", releaseCfg.RepoPath))
		}
		releaseOpts = append(releaseOpts, usecase.WithGitRepo(repo))
	}
	if slackCfg.Enabled() {
		releaseOpts = append(releaseOpts, usecase.WithNotifier(slackCfg.Configure()))
		logger.Info("Slack notifications enabled", "channel", slackCfg.Channel)
	}

	return usecase.NewRelease(githubClient, versionUC, changelogUC, pipeline.Release, releaseOpts...), nil
}
