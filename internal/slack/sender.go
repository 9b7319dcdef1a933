package slack

import (
	"context"
	"fmt"

	"github.com/classdesk/classbot/internal/domain/contract"
	slackapi "github.com/slack-go/slack"
)

// Sender implements contract.Sender over the Slack Web API. An address is a
// Slack user or channel ID; delivery is a plain text PostMessage.
type Sender struct {
	client *slackapi.Client
}

func NewSender(client *slackapi.Client) contract.Sender {
	return &Sender{client: client}
}

func (s *Sender) Send(ctx context.Context, address, text string) error {
	_, _, err := s.client.PostMessageContext(
		ctx,
		address,
		slackapi.MsgOptionText(text, false),
		slackapi.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}
