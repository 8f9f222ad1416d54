package usecase

import (
	"bytes"
	_ "embed"
	"context"
	"strings"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/cutter/pkg/domain/model"
)

//go:embed prompts/release_notes_system.md
var notesSystemPrompt string

//go:embed prompts/release_notes_user.md
var notesUserPromptTemplate string

// NotesPolisher rewrites machine-generated changelog text into
// human-facing release notes through an LLM session.
type NotesPolisher struct {
	llmClient    gollem.LLMClient
	userTemplate *template.Template
}

// NewNotesPolisher creates a NotesPolisher instance
func NewNotesPolisher(llmClient gollem.LLMClient) (*NotesPolisher, error) {
	tmpl, err := template.New("user").Parse(notesUserPromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &NotesPolisher{
		llmClient:    llmClient,
		userTemplate: tmpl,
	}, nil
}

// Polish rewrites the filtered changelog text. The caller decides what
// to do on failure; polishing is best-effort by design of the pipeline.
func (p *NotesPolisher) Polish(ctx context.Context, changelog string, versions *model.VersionPair) (string, error) {
	logger := ctxlog.From(ctx)

	var buf bytes.Buffer
	if err := p.userTemplate.Execute(&buf, map[string]string{
		"Tag":         versions.NextTag,
		"PreviousTag": versions.CurrentTag,
		"Changelog":   changelog,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to execute user prompt template")
	}

	logger.Debug("Calling LLM for release notes polish", "prompt_length", buf.Len())

	session, err := p.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(notesSystemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate LLM content")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("no response from LLM")
	}

	polished := strings.TrimSpace(resp.Texts[0])
	if polished == "" {
		return "", goerr.New("LLM returned empty release notes")
	}

	return polished, nil
}
