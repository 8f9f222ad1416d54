package interfaces

import (
	"context"

	"github.com/m-mizutani/cutter/pkg/domain/model"
)

// CommandRunner executes an external tool and returns its stdout.
// A non-zero exit code is an error; stderr is attached to the error.
type CommandRunner interface {
	Run(ctx context.Context, cmd *model.Command) (string, error)
}

// GitRepo exposes the read-only local checkout inspections the pipeline
// needs. Implementations must tolerate a missing checkout by reporting it
// through RepoState rather than failing.
type GitRepo interface {
	HeadSHA(ctx context.Context) (string, error)
	TagExists(ctx context.Context, name string) (bool, error)
	CommitsSinceTag(ctx context.Context, tag string) (int, error)
}

// Notifier announces a published release to an external channel.
type Notifier interface {
	NotifyRelease(ctx context.Context, owner, repo string, result *model.ReleaseResult) error
}
