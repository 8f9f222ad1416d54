package model

import (
	"strings"
	"time"
)

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePullRequest WebhookEventType = "pull_request"
	EventTypeUnknown     WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., opened, closed)
	Repository string           // Repository full name (owner/name)
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload

	// Pull request fields, populated only for pull_request events
	Merged     bool   // Whether the pull request was merged
	HeadBranch string // Source branch of the pull request
	PRNumber   int    // Pull request number
}

// IsReleaseTrigger reports whether this event should start a release run.
// Only a merged pull request whose head branch carries the pre-release
// prefix qualifies; everything else is acknowledged and ignored.
func (e *WebhookEvent) IsReleaseTrigger(branchPrefix string) bool {
	if e.Type != EventTypePullRequest {
		return false
	}
	if e.Action != "closed" || !e.Merged {
		return false
	}
	return strings.HasPrefix(e.HeadBranch, branchPrefix)
}

// OwnerRepo splits the repository full name into owner and name.
func (e *WebhookEvent) OwnerRepo() (string, string) {
	owner, repo, ok := strings.Cut(e.Repository, "/")
	if !ok {
		return "", ""
	}
	return owner, repo
}
