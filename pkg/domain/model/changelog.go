package model

// Changelog holds the changelog text as it moves through the pipeline.
type Changelog struct {
	Raw      string // Generator stdout as captured
	Filtered string // After dropping ERROR/WARN lines
	Body     string // Assembled release notes
}

// RepoState is what the local checkout contributes to a release run.
// Zero value means no checkout was available.
type RepoState struct {
	HeadSHA          string
	CommitsSinceTag  int
	HasCheckout      bool
	CurrentTagExists bool
}
