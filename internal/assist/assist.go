// Package assist asks a language model to rewrite a time phrase the rule
// based parser could not read into a plain "YYYY-MM-DD HH:MM" timestamp.
package assist

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"remindpro/internal/lang"
)

const Layout = "2006-01-02 15:04"

var (
	ErrDisabled = errors.New("assist: no provider configured")
	ErrNoAnswer = errors.New("assist: model gave no usable timestamp")
)

// Rewriter turns phrase into a Layout timestamp in the zone of now.
type Rewriter interface {
	Rewrite(ctx context.Context, phrase string, l lang.Language, now time.Time) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider      string // "gemini", "openai" or empty
	GeminiToken   string
	GeminiModel   string
	OpenAIToken   string
	OpenAIBaseURL string
	OpenAIModel   string
	Timeout       time.Duration
}

// New returns the configured provider, or ErrDisabled when none is.
func New(ctx context.Context, cfg Config) (Rewriter, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "none", "off":
		return nil, ErrDisabled
	case "gemini":
		if cfg.GeminiToken == "" {
			return nil, fmt.Errorf("assist: GEMINI_TOKEN is not set")
		}
		g, err := NewGemini(ctx, cfg.GeminiToken, cfg.GeminiModel, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "openai":
		if cfg.OpenAIToken == "" {
			return nil, fmt.Errorf("assist: OPENAI_TOKEN is not set")
		}
		return NewOpenAI(cfg.OpenAIToken, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("assist: unknown provider %q", cfg.Provider)
	}
}

const instructions = `You convert reminder time phrases into timestamps.
Reply with exactly one line: the local date and time in the form YYYY-MM-DD HH:MM.
Resolve relative phrases against the current local time you are given.
If the phrase does not describe a moment in time, reply with NONE.`

func prompt(phrase string, l lang.Language, now time.Time) string {
	return fmt.Sprintf("Current local time: %s (%s, %s)\nLanguage: %s\nPhrase: %s",
		now.Format(Layout), now.Weekday(), now.Location(), l.Code(), strings.TrimSpace(phrase))
}

var stampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}`)

// extract pulls the timestamp out of a model answer.
func extract(answer string) (string, error) {
	s := stampRe.FindString(answer)
	if s == "" {
		return "", ErrNoAnswer
	}
	s = strings.Replace(s, "T", " ", 1)
	if _, err := time.Parse(Layout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrNoAnswer, s)
	}
	return s, nil
}
