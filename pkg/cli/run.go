package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/cli/config"
	"github.com/m-mizutani/cutter/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		githubCfg  config.GitHub
		releaseCfg config.Release
		geminiCfg  config.Gemini
		slackCfg   config.Slack
		dryRun     bool
	)

	flags := githubCfg.Flags()
	flags = append(flags, releaseCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Run the pipeline without publishing",
			Destination: &dryRun,
			Sources:     cli.EnvVars("CUTTER_DRY_RUN"),
		},
	)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run the release pipeline once (manual dispatch)",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if releaseCfg.Owner == "" || releaseCfg.Repo == "" {
				return goerr.New("owner and repo are required for manual dispatch")
			}

			releaseUC, err := buildReleaseUseCase(ctx, &githubCfg, &releaseCfg, &geminiCfg, &slackCfg)
			if err != nil {
				return err
			}

			req := &model.ReleaseRequest{
				RunID:   uuid.NewString(),
				Trigger: model.TriggerManual,
				Owner:   releaseCfg.Owner,
				Repo:    releaseCfg.Repo,
				DryRun:  dryRun,
			}

			logger.Info("Manual release dispatch", "run_id", req.RunID)

			result, err := releaseUC.Execute(ctx, req)
			if err != nil {
				return err
			}

			if result.DryRun {
				color.New(color.FgYellow).Printf("dry run: would publish %s (%s)\n",
					result.TagName, result.Name)
				fmt.Println(result.Body)
				return nil
			}

			color.New(color.FgGreen).Printf("published %s with %d assets\n",
				result.TagName, len(result.Assets))
			fmt.Println(result.URL)
			return nil
		},
	}
}
