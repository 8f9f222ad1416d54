package slacknotify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
	"github.com/m-mizutani/cutter/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	client  *slack.Client
	channel string
}

// New creates a Slack notifier posting to the given channel.
func New(token, channel string, opts ...slack.Option) interfaces.Notifier {
	return &notifier{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// NotifyRelease posts a short announcement of the published release.
func (n *notifier) NotifyRelease(ctx context.Context, owner, repo string, result *model.ReleaseResult) error {
	text := fmt.Sprintf(":rocket: Released *%s/%s* `%s` (%d assets)\n%s",
		owner, repo, result.TagName, len(result.Assets), result.URL)
	if result.Prerelease {
		text = fmt.Sprintf(":construction: Pre-released *%s/%s* `%s` (%d assets)\n%s",
			owner, repo, result.TagName, len(result.Assets), result.URL)
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post Slack message", goerr.V("channel", n.channel))
	}

	return nil
}
