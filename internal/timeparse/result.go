package timeparse

import (
	"errors"
	"time"
)

// Tag names the rule that produced a result, or why no rule did.
type Tag string

// Rule tags.
const (
	TagGrammar          Tag = "grammar"
	TagRelativeMinutes  Tag = "relative_minutes"
	TagRelativeHours    Tag = "relative_hours"
	TagRelativeDays     Tag = "relative_days"
	TagRelativeWeeks    Tag = "relative_weeks"
	TagDayAfterTomorrow Tag = "day_after_tomorrow"
	TagTomorrow         Tag = "tomorrow"
	TagToday            Tag = "today"
	TagNextWeekday      Tag = "next_weekday"
	TagWeekday          Tag = "weekday"
	TagNumericDate      Tag = "date_numeric"
	TagWordDate         Tag = "date_words"
	TagSimpleTime       Tag = "simple_time"
	TagTimeOfDay        Tag = "time_of_day"
	TagTimeOnly         Tag = "time_only"
	TagGrammarSearch    Tag = "grammar_search"
)

// Failure tags.
const (
	TagEmpty       Tag = "empty"
	TagNotParsed   Tag = "not_parsed"
	TagTooFar      Tag = "too_far"
	TagInvalidDate Tag = "invalid_date"
	TagInPast      Tag = "in_past"
	TagBadTimezone Tag = "bad_timezone"
)

var (
	ErrEmptyInput  = errors.New("timeparse: empty input")
	ErrNotParsed   = errors.New("timeparse: no rule matched")
	ErrTooFar      = errors.New("timeparse: too far in the future")
	ErrInvalidDate = errors.New("timeparse: no such calendar date")
	ErrInPast      = errors.New("timeparse: explicit date is in the past")
	ErrBadTimezone = errors.New("timeparse: unknown timezone")
)

// Result is the outcome of a Parse call. On failure Instant is zero and Tag
// is one of the failure tags.
type Result struct {
	Instant  time.Time
	Tag      Tag
	Adjusted bool
}

// OK reports whether the result carries an instant.
func (r Result) OK() bool { return !r.Instant.IsZero() }

// UTC returns the instant in UTC for storage.
func (r Result) UTC() time.Time { return r.Instant.UTC() }

// FailureTag maps a Parse error to its failure tag.
func FailureTag(err error) Tag {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return TagEmpty
	case errors.Is(err, ErrTooFar):
		return TagTooFar
	case errors.Is(err, ErrInvalidDate):
		return TagInvalidDate
	case errors.Is(err, ErrInPast):
		return TagInPast
	case errors.Is(err, ErrBadTimezone):
		return TagBadTimezone
	default:
		return TagNotParsed
	}
}
