package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/lang"
	"remindpro/internal/planner"
	"remindpro/internal/recurrence"
	"remindpro/internal/reminder"
	"remindpro/internal/timeparse"
	"remindpro/internal/tzutil"
)

var msk, _ = time.LoadLocation("Europe/Moscow")

func TestTextsComplete(t *testing.T) {
	for key, pair := range texts {
		for _, l := range lang.All() {
			assert.NotEmpty(t, pair[l], "%s/%s", key, l)
		}
		assert.Equal(t, strings.Count(pair[0], "%"), strings.Count(pair[1], "%"), "verb count differs for %s", key)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Reminder #7 deleted.", T(lang.English, "deleted", 7))
	assert.Equal(t, "Напоминание #7 удалено.", T(lang.Russian, "deleted", 7))
	assert.Equal(t, "Cancelled.", T(lang.English, "cancelled"))
	assert.Equal(t, "no_such_key", T(lang.English, "no_such_key"))
}

func TestDescribePlan(t *testing.T) {
	p := planner.Plan{
		Text:   "Планерка",
		Anchor: time.Date(2024, 1, 22, 10, 0, 0, 0, msk),
		Repeat: recurrence.Spec{Kind: recurrence.Weekly, Weekdays: []int{0}, Interval: 1},
	}
	got := describePlan(p, lang.Russian)
	assert.Equal(t, "Напомнить: **Планерка**\nКогда: 22 января 2024, 10:00 (Europe/Moscow)\nПовтор: по понедельникам", got)

	p = planner.Plan{Text: "Meeting", Anchor: time.Date(2024, 1, 16, 15, 0, 0, 0, msk), Adjusted: true, Assisted: true}
	got = describePlan(p, lang.English)
	assert.Contains(t, got, "When: January 16, 2024, 3:00 PM (Europe/Moscow)")
	assert.Contains(t, got, T(lang.English, "adjusted_note"))
	assert.Contains(t, got, T(lang.English, "assisted_note"))
	assert.NotContains(t, got, "Repeats")
}

func TestReminderLine(t *testing.T) {
	r := reminder.Reminder{
		ID:       12,
		Text:     "pills",
		NextFire: time.Date(2024, 1, 16, 9, 0, 0, 0, msk),
		Repeat:   recurrence.Spec{Kind: recurrence.Daily, Interval: 1},
		Paused:   true,
	}
	assert.Equal(t, "`#12` January 16, 2024, 9:00 AM · pills · every day (paused)", reminderLine(r, lang.English))
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", timeparse.ErrNotParsed), `I couldn't understand the time "someday". See /examples`},
		{timeparse.ErrInPast, "That time is already in the past."},
		{reminder.ErrInPast, "That time is already in the past."},
		{fmt.Errorf("%w: Mars/Base", tzutil.ErrUnknownZone), `Unknown timezone "Mars/Base".`},
		{timeparse.ErrBadTimezone, `Unknown timezone "Mars/Base".`},
		{planner.ErrTextTooLong, fmt.Sprintf("The reminder text is longer than %d characters.", planner.MaxTextLength)},
		{fmt.Errorf("%w: limit 3", reminder.ErrTooMany), fmt.Sprintf("Too many active reminders (limit %d).", reminder.MaxPerUser)},
		{errors.New("boom"), "Something went wrong, please try again."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorText(tt.err, lang.English, "someday", "Mars/Base"), tt.err.Error())
	}
}

func TestStashTake(t *testing.T) {
	a := stash(pendingReminder{UserID: "1"})
	b := stash(pendingReminder{UserID: "2"})
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")

	p, ok := take(a)
	require.True(t, ok)
	assert.Equal(t, "1", p.UserID)
	_, ok = take(a)
	assert.False(t, ok)

	p, ok = take(b)
	require.True(t, ok)
	assert.Equal(t, "2", p.UserID)
}

func TestTakeConcurrentClicks(t *testing.T) {
	for range 50 {
		token := stash(pendingReminder{UserID: "1"})
		var (
			wg    sync.WaitGroup
			taken atomic.Int32
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := take(token); ok {
					taken.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), taken.Load())
	}
}

func TestTokenOf(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "confirm-abc123"},
	}}
	assert.Equal(t, "abc123", tokenOf(i))
}

func TestExamplesText(t *testing.T) {
	got := examplesText(lang.Russian)
	assert.True(t, strings.HasPrefix(got, "Примеры"))
	assert.Contains(t, got, "• Завтра 10:30")
	assert.Contains(t, examplesText(lang.English), "• Tomorrow 10:30 AM")
}

func TestNotificationTextOneTime(t *testing.T) {
	r := reminder.Reminder{UserID: "42", Text: "call mom", Repeat: recurrence.Once}
	assert.Equal(t, "⏰ <@42> Reminder: call mom", notificationText(r, lang.English))
}

func TestImageFiles(t *testing.T) {
	files := imageFiles([]reminder.Image{
		{Filename: "a.png", Data: "aGVsbG8="},
		{Filename: "bad.png", Data: "%%%"},
	})
	require.Len(t, files, 1)
	assert.Equal(t, "a.png", files[0].Name)
}
