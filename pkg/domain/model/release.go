package model

// TriggerKind identifies how a release run was started.
type TriggerKind string

const (
	TriggerWebhook TriggerKind = "webhook" // Merged pre-release pull request
	TriggerManual  TriggerKind = "manual"  // CLI dispatch
)

// ReleaseRequest carries everything the release pipeline needs for one run.
type ReleaseRequest struct {
	RunID      string      // Webhook delivery ID or generated run ID
	Trigger    TriggerKind // How the run was started
	Owner      string      // Repository owner
	Repo       string      // Repository name
	HeadBranch string      // Source branch for webhook-triggered runs
	PRNumber   int         // Pull request number for webhook-triggered runs
	DryRun     bool        // Run every step but skip publication
}

// ReleaseResult describes the published release.
type ReleaseResult struct {
	TagName    string // Tag the release was published under
	Name       string // Release display name
	URL        string // HTML URL of the release
	Body       string // Release notes body
	Prerelease bool   // Whether the release was marked as a prerelease
	Assets     []string
	DryRun     bool
}
