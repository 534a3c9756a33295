package assist

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"remindpro/internal/lang"
)

// OpenAI rewrites phrases with any OpenAI-compatible chat endpoint.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAI(token, baseURL, model string, timeout time.Duration) *OpenAI {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model, timeout: timeout}
}

func (o *OpenAI) Rewrite(ctx context.Context, phrase string, l lang.Language, now time.Time) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: prompt(phrase, l, now)},
		},
		MaxTokens: 32,
	})
	if err != nil {
		return "", fmt.Errorf("assist: openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoAnswer
	}
	return extract(resp.Choices[0].Message.Content)
}
