// Package notify delivers formatted forecasts to a chat platform.
package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackNotifier implements weather.MessagePoster with the Slack Web API.
type SlackNotifier struct {
	client *slack.Client
}

// NewSlackNotifier authenticates with token. An empty apiURL keeps the
// slack-go default endpoint.
func NewSlackNotifier(token, apiURL string) *SlackNotifier {
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &SlackNotifier{client: slack.New(token, opts...)}
}

// PostMessage sends text to channelID via chat.postMessage. The text is sent
// unescaped and the API response is not inspected beyond its error.
func (n *SlackNotifier) PostMessage(ctx context.Context, channelID, text string) error {
	if _, _, err := n.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post message to %s: %w", channelID, err)
	}
	return nil
}
