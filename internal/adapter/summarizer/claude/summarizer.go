package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bnema/standup/internal/port"
)

const (
	DefaultModel = "claude-3-5-sonnet-20240620"

	maxTokens   = 1024
	temperature = 0.3

	systemPrompt = "You are a helpful assistant that specializes in summarizing standup meetings in a concise and actionable format."
)

var (
	ErrEmptyTranscript = errors.New("transcript text is empty")
	ErrEmptyResponse   = errors.New("model returned no text")
)

type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxRetries int
}

type Summarizer struct {
	client anthropic.Client
	model  string
}

func NewSummarizer(cfg Config) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Summarizer{
		client: anthropic.NewClient(opts...),
		model:  model,
	}, nil
}

func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(transcript))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	summary := strings.TrimSpace(b.String())
	if summary == "" {
		return "", ErrEmptyResponse
	}
	return summary, nil
}

func buildPrompt(transcript string) string {
	return `You are a helpful assistant that summarizes standup meetings. Below is a transcript of a standup meeting.
Please provide a concise summary that includes:

1. Key updates from each participant
2. Any blockers or issues mentioned
3. Action items or next steps
4. Decisions made during the meeting

Format the summary in a clear, organized way that would be useful for team members who missed the meeting.

Here is the transcript:

` + transcript
}

var _ port.Summarizer = (*Summarizer)(nil)
