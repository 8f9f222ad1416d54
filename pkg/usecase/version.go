package usecase

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
	"github.com/m-mizutani/cutter/pkg/domain/types"
)

type versionResolver struct {
	runner interfaces.CommandRunner
	cfg    model.VersionConfig
}

// NewVersionResolver creates a VersionResolver that shells out to the
// configured version helper. The helper itself is an external
// collaborator; this use case only runs it and validates its output.
func NewVersionResolver(runner interfaces.CommandRunner, cfg model.VersionConfig) interfaces.VersionResolver {
	return &versionResolver{
		runner: runner,
		cfg:    cfg,
	}
}

// Resolve invokes the helper twice (current, then next) and returns the
// validated version pair.
func (uc *versionResolver) Resolve(ctx context.Context) (*model.VersionPair, error) {
	logger := ctxlog.From(ctx)

	current, err := uc.invoke(ctx, false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve current version")
	}

	next, err := uc.invoke(ctx, true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve next version")
	}

	if !next.GreaterThan(current) {
		return nil, goerr.Wrap(types.ErrVersionNotAdvanced, "version helper output rejected",
			goerr.V("current", current.String()),
			goerr.V("next", next.String()),
		)
	}

	pair := &model.VersionPair{
		Current:    current,
		Next:       next,
		CurrentTag: uc.cfg.TagPrefix + current.String(),
		NextTag:    uc.cfg.TagPrefix + next.String(),
	}

	logger.Info("Resolved versions",
		"current_tag", pair.CurrentTag,
		"next_tag", pair.NextTag,
		"prerelease", pair.IsPrerelease(),
	)

	return pair, nil
}

func (uc *versionResolver) invoke(ctx context.Context, next bool) (*semver.Version, error) {
	cmd := &model.Command{
		Path: uc.cfg.Command,
		Args: uc.cfg.Args,
		Dir:  uc.cfg.WorkDir,
	}
	if next {
		cmd.Env = map[string]string{uc.cfg.NextEnv: "1"}
	}

	out, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err
	}

	raw := lastNonEmptyLine(out)
	if raw == "" {
		return nil, goerr.Wrap(types.ErrEmptyVersion, "no version in helper output",
			goerr.V("command", uc.cfg.Command))
	}

	version, err := semver.NewVersion(strings.TrimPrefix(raw, uc.cfg.TagPrefix))
	if err != nil {
		return nil, goerr.Wrap(err, "helper output is not a semantic version",
			goerr.V("output", raw))
	}

	return version, nil
}

// lastNonEmptyLine extracts the helper's answer. Helpers are free to
// print progress noise before the version itself.
func lastNonEmptyLine(out string) string {
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
