package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
)

type changelogGenerator struct {
	runner   interfaces.CommandRunner
	cfg      model.ChangelogConfig
	polisher *NotesPolisher
}

// ChangelogOption configures the changelog generator
type ChangelogOption func(*changelogGenerator)

// WithNotesPolisher enables LLM-based rewriting of the generated notes.
// Polish failures fall back to the unpolished text.
func WithNotesPolisher(p *NotesPolisher) ChangelogOption {
	return func(uc *changelogGenerator) {
		uc.polisher = p
	}
}

// NewChangelogGenerator creates a ChangelogGenerator that shells out to
// the configured changelog tool and assembles the release body from its
// output.
func NewChangelogGenerator(runner interfaces.CommandRunner, cfg model.ChangelogConfig, opts ...ChangelogOption) interfaces.ChangelogGenerator {
	uc := &changelogGenerator{
		runner: runner,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate runs the changelog tool with the resolved tags exported in
// its environment, strips diagnostic lines, and assembles the body.
func (uc *changelogGenerator) Generate(ctx context.Context, versions *model.VersionPair, repo *model.RepoState) (*model.Changelog, error) {
	logger := ctxlog.From(ctx)

	raw, err := uc.runner.Run(ctx, &model.Command{
		Path: uc.cfg.Command,
		Args: uc.cfg.Args,
		Dir:  uc.cfg.WorkDir,
		Env: map[string]string{
			"CUTTER_CURRENT_TAG": versions.CurrentTag,
			"CUTTER_NEXT_TAG":    versions.NextTag,
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "changelog tool failed")
	}

	filtered := FilterDiagnostics(raw)
	if strings.TrimSpace(filtered) == "" {
		logger.Warn("Changelog tool produced no usable output",
			"command", uc.cfg.Command,
		)
	}

	notes := filtered
	if uc.polisher != nil {
		polished, err := uc.polisher.Polish(ctx, filtered, versions)
		if err != nil {
			logger.Warn("Release notes polish failed, using unpolished notes", "error", err)
		} else {
			notes = polished
		}
	}

	return &model.Changelog{
		Raw:      raw,
		Filtered: filtered,
		Body:     assembleBody(versions, repo, notes),
	}, nil
}

// FilterDiagnostics drops lines the changelog tool mixes into stdout:
// any line whose content starts with ERROR or WARN after leading
// whitespace. Everything else is kept verbatim.
func FilterDiagnostics(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		content := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(content, "ERROR") || strings.HasPrefix(content, "WARN") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func assembleBody(versions *model.VersionPair, repo *model.RepoState, notes string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Changes in %s\n\n", versions.NextTag))
	if repo != nil && repo.HasCheckout && repo.CurrentTagExists {
		sb.WriteString(fmt.Sprintf("%d commits since %s.\n\n", repo.CommitsSinceTag, versions.CurrentTag))
	}
	sb.WriteString(strings.TrimSpace(notes))
	sb.WriteString("\n")

	return sb.String()
}
