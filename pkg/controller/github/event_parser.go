package github

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/cutter/pkg/domain/model"
)

// BuildEvent converts a parsed GitHub webhook payload into the domain
// event. Unrecognized payload types come back as EventTypeUnknown so the
// gate can acknowledge and drop them.
func BuildEvent(deliveryID, eventType string, payload any, rawBody []byte) *model.WebhookEvent {
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: rawBody,
	}

	switch e := payload.(type) {
	case *github.PullRequestEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
		event.Merged = e.GetPullRequest().GetMerged()
		event.HeadBranch = e.GetPullRequest().GetHead().GetRef()
		event.PRNumber = e.GetPullRequest().GetNumber()
	default:
		event.Type = model.EventTypeUnknown
	}

	return event
}
