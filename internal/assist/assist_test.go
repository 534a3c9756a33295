package assist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/lang"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		answer string
		want   string
		err    bool
	}{
		{"2024-01-20 15:00", "2024-01-20 15:00", false},
		{"Sure! 2024-01-20T15:00 is the time.", "2024-01-20 15:00", false},
		{"NONE", "", true},
		{"2024-13-40 99:99", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := extract(tt.answer)
		if tt.err {
			assert.ErrorIs(t, err, ErrNoAnswer, tt.answer)
			continue
		}
		require.NoError(t, err, tt.answer)
		assert.Equal(t, tt.want, got)
	}
}

func TestPrompt(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	p := prompt("  на следующей неделе ", lang.Russian, now)
	assert.Contains(t, p, "2024-01-15 10:00")
	assert.Contains(t, p, "Monday")
	assert.Contains(t, p, "Language: ru")
	assert.Contains(t, p, "Phrase: на следующей неделе")
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = New(context.Background(), Config{Provider: "gemini"})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Provider: "carrier-pigeon"})
	assert.Error(t, err)

	r, err := New(context.Background(), Config{Provider: "openai", OpenAIToken: "sk-test", OpenAIBaseURL: "http://localhost:1/v1"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, r)
}
