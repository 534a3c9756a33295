package handler

import (
	"errors"
	"fmt"
	"strings"

	"remindpro/internal/lang"
	"remindpro/internal/planner"
	"remindpro/internal/reminder"
	"remindpro/internal/timeparse"
	"remindpro/internal/tzutil"
)

// describePlan renders the confirmation text for a plan.
func describePlan(p planner.Plan, l lang.Language) string {
	lines := []string{
		T(l, "confirm_title", p.Text),
		T(l, "when_line", tzutil.FormatLocal(p.Anchor, l), p.Anchor.Location()),
	}
	if p.Repeat.Repeats() {
		lines = append(lines, T(l, "repeat_line", p.Repeat.Describe(l)))
	}
	if p.Adjusted && !p.Repeat.Repeats() {
		lines = append(lines, T(l, "adjusted_note"))
	}
	if p.Assisted {
		lines = append(lines, T(l, "assisted_note"))
	}
	return strings.Join(lines, "\n")
}

// reminderLine is one row of the /reminders list.
func reminderLine(r reminder.Reminder, l lang.Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "`#%d` %s · %s", r.ID, tzutil.FormatLocal(r.NextFire, l), r.Text)
	if r.Repeat.Repeats() {
		fmt.Fprintf(&b, " · %s", r.Repeat.Describe(l))
	}
	if r.Paused {
		b.WriteString(" " + T(l, "paused_mark"))
	}
	return b.String()
}

// errorText maps a failure to a reply. phrase is the time phrase the user
// typed, zone the zone involved.
func errorText(err error, l lang.Language, phrase, zone string) string {
	switch {
	case errors.Is(err, reminder.ErrTooMany):
		return T(l, "too_many", reminder.MaxPerUser)
	case errors.Is(err, reminder.ErrInPast):
		return T(l, "in_past")
	case errors.Is(err, tzutil.ErrUnknownZone):
		return T(l, "bad_timezone", zone)
	}
	switch key := planner.MessageKey(err); key {
	case "text_too_long":
		return T(l, key, planner.MaxTextLength)
	case "not_parsed":
		return T(l, key, phrase)
	case "bad_timezone":
		return T(l, key, zone)
	default:
		return T(l, key)
	}
}

// logTag is the parse outcome recorded with each request.
func logTag(p planner.Plan, err error) string {
	if err != nil && p.Tag == "" {
		return string(timeparse.FailureTag(err))
	}
	return string(p.Tag)
}
