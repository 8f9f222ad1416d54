package config

import "github.com/urfave/cli/v3"

// Release holds deployment-level release settings. Repository-level
// settings (tool commands, asset globs) live in the pipeline TOML file.
type Release struct {
	Owner        string
	Repo         string
	BranchPrefix string
	RepoPath     string
	ConfigPath   string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner to publish releases for",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("CUTTER_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name to publish releases for",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("CUTTER_REPO"),
		},
		&cli.StringFlag{
			Name:        "branch-prefix",
			Usage:       "Head branch prefix marking a pre-release pull request",
			Value:       "pre-release",
			Destination: &c.BranchPrefix,
			Sources:     cli.EnvVars("CUTTER_BRANCH_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "repo-path",
			Usage:       "Path to the local checkout (optional)",
			Destination: &c.RepoPath,
			Sources:     cli.EnvVars("CUTTER_REPO_PATH"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the pipeline TOML file",
			Value:       "cutter.toml",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("CUTTER_CONFIG"),
		},
	}
}
