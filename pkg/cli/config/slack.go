package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/infra/slacknotify"
)

// Slack holds Slack notification configuration. Both fields must be set
// to enable notifications.
type Slack struct {
	Token   string
	Channel string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for release notifications",
			Destination: &c.Token,
			Sources:     cli.EnvVars("CUTTER_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for release notifications",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("CUTTER_SLACK_CHANNEL"),
		},
	}
}

// Enabled reports whether notifications are configured.
func (c *Slack) Enabled() bool {
	return c.Token != "" && c.Channel != ""
}

// Configure creates the notifier.
func (c *Slack) Configure() interfaces.Notifier {
	return slacknotify.New(c.Token, c.Channel)
}
