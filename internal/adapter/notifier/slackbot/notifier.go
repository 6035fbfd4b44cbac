package slackbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/standup/internal/port"
	"github.com/slack-go/slack"
)

const (
	headerText = "📝 Standup Meeting Summary"
	// Slack rejects section blocks with more than 3000 characters of text.
	maxSectionText = 3000
)

var (
	ErrNoToken       = errors.New("slack bot token is not configured")
	ErrNoDestination = errors.New("no slack channel to post to")
)

type Config struct {
	Token string
	// APIURL overrides https://slack.com/api/, for tests.
	APIURL string
	// FallbackChannel is used when a channel has no destination of its own.
	FallbackChannel string
}

type Notifier struct {
	client   *slack.Client
	fallback string
}

func NewNotifier(cfg Config) *Notifier {
	n := &Notifier{fallback: cfg.FallbackChannel}
	if cfg.Token == "" {
		return n
	}
	var opts []slack.Option
	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(cfg.APIURL))
	}
	n.client = slack.New(cfg.Token, opts...)
	return n
}

func (n *Notifier) Notify(ctx context.Context, text, destinationID string) error {
	if n.client == nil {
		return ErrNoToken
	}
	if destinationID == "" {
		destinationID = n.fallback
	}
	if destinationID == "" {
		return ErrNoDestination
	}

	_, _, err := n.client.PostMessageContext(ctx, destinationID,
		slack.MsgOptionText("Standup Meeting Summary", false),
		slack.MsgOptionBlocks(summaryBlocks(text)...),
	)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	return nil
}

func summaryBlocks(text string) []slack.Block {
	return []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, headerText, true, false)),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, truncate(text, maxSectionText), false, false), nil, nil),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var _ port.Notifier = (*Notifier)(nil)
