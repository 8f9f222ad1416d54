package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
)

type runner struct{}

// NewRunner creates a CommandRunner backed by os/exec.
func NewRunner() interfaces.CommandRunner {
	return &runner{}
}

// Run executes the command and returns its stdout. The command inherits
// the parent environment with cmd.Env merged on top, so computed values
// like the next tag propagate to the external tools.
func (r *runner) Run(ctx context.Context, cmd *model.Command) (string, error) {
	if cmd.Path == "" {
		return "", goerr.New("command path is empty")
	}

	logger := ctxlog.From(ctx)

	execCmd := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	execCmd.Dir = cmd.Dir
	execCmd.Env = mergeEnv(os.Environ(), cmd.Env)

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	logger.Debug("Running external command",
		"path", cmd.Path,
		"args", cmd.Args,
		"dir", cmd.Dir,
	)

	if err := execCmd.Run(); err != nil {
		return "", goerr.Wrap(err, "external command failed",
			goerr.V("path", cmd.Path),
			goerr.V("args", cmd.Args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}

func mergeEnv(parent []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return parent
	}

	merged := make([]string, 0, len(parent)+len(extra))
	for _, kv := range parent {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := extra[key]; overridden {
				continue
			}
		}
		merged = append(merged, kv)
	}
	for k, v := range extra {
		merged = append(merged, fmt.Sprintf("%s=%s", k, v))
	}
	return merged
}
