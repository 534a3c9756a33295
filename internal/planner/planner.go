// Package planner turns a raw reminder request into a first fire instant and
// a recurrence rule: it splits the text from the time phrase, detects a
// repeat phrase, parses what remains and aligns the anchor to the rule.
package planner

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"remindpro/internal/assist"
	"remindpro/internal/lang"
	"remindpro/internal/recurrence"
	"remindpro/internal/segment"
	"remindpro/internal/timeparse"
)

const MaxTextLength = 500

var (
	ErrNoTime      = errors.New("planner: no time phrase found")
	ErrEmptyText   = errors.New("planner: reminder text is empty")
	ErrTextTooLong = errors.New("planner: reminder text is too long")
	ErrUnsafeText  = errors.New("planner: reminder text contains markup")
)

// Plan is a parsed, not yet stored reminder.
type Plan struct {
	Text     string
	TimeText string
	Lang     lang.Language
	Zone     string
	Anchor   time.Time // first fire, in the user's zone
	Tag      timeparse.Tag
	Adjusted bool
	Assisted bool
	Repeat   recurrence.Spec
}

// Planner is safe for concurrent use.
type Planner struct {
	parser *timeparse.Parser
	assist assist.Rewriter
}

// New returns a Planner. rw may be nil.
func New(p *timeparse.Parser, rw assist.Rewriter) *Planner {
	return &Planner{parser: p, assist: rw}
}

// Parser returns the underlying parser.
func (pl *Planner) Parser() *timeparse.Parser { return pl.parser }

// Plan splits a free-form message such as "позвонить маме завтра в 10"
// and plans it. A zero now means the parser's clock.
func (pl *Planner) Plan(ctx context.Context, message string, l lang.Language, tz string, now time.Time) (Plan, error) {
	split := segment.Extract(message, l)
	if split.Ambiguous || split.Time == "" {
		return Plan{Text: strings.TrimSpace(message), Lang: l, Zone: tz}, ErrNoTime
	}
	return pl.PlanParts(ctx, split.Text, split.Time, l, tz, now)
}

// PlanParts plans a reminder whose text and time phrase are already apart,
// as with the slash command's two options.
func (pl *Planner) PlanParts(ctx context.Context, text, when string, l lang.Language, tz string, now time.Time) (Plan, error) {
	text = strings.TrimSpace(text)
	plan := Plan{Text: text, TimeText: strings.TrimSpace(when), Lang: l, Zone: tz}
	if err := ValidateText(text); err != nil {
		return plan, err
	}
	if now.IsZero() {
		now = pl.parser.Now()
	}

	spec, rest := recurrence.Detect(plan.TimeText, l)
	if strings.TrimSpace(rest) == "" {
		if !spec.Repeats() {
			return plan, fmt.Errorf("%w: %w", ErrNoTime, timeparse.ErrEmptyInput)
		}
		rest = fmt.Sprintf("%02d:00", pl.parser.DefaultHour())
	}

	res, err := pl.parser.Parse(rest, l, tz, now)
	if errors.Is(err, timeparse.ErrNotParsed) && pl.assist != nil {
		if rewritten, aerr := pl.rewrite(ctx, rest, l, tz, now); aerr == nil {
			if r, perr := pl.parser.Parse(rewritten, l, tz, now); perr == nil {
				res, err = r, nil
				plan.Assisted = true
			}
		}
	}
	plan.Tag = res.Tag
	if err != nil {
		return plan, err
	}
	plan.Adjusted = res.Adjusted

	if spec.Kind == recurrence.Weekly && len(spec.Weekdays) == 0 {
		spec.Weekdays = []int{recurrence.WeekdayOf(res.Instant)}
	}
	spec = spec.Normalize()
	anchor, err := recurrence.Align(res.Instant, spec)
	if err != nil {
		return plan, err
	}
	plan.Anchor = anchor
	plan.Repeat = spec
	return plan, nil
}

func (pl *Planner) rewrite(ctx context.Context, phrase string, l lang.Language, tz string, now time.Time) (string, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", err
	}
	return pl.assist.Rewrite(ctx, phrase, l, now.In(loc))
}

var unsafeRe = regexp.MustCompile(`(?i)<\s*/?\s*script|javascript:|\bon\w+\s*=`)

// ValidateText checks a reminder body before it is stored.
func ValidateText(text string) error {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return ErrEmptyText
	case utf8.RuneCountInString(text) > MaxTextLength:
		return fmt.Errorf("%w: %d characters, limit %d", ErrTextTooLong, utf8.RuneCountInString(text), MaxTextLength)
	case unsafeRe.MatchString(text):
		return ErrUnsafeText
	}
	return nil
}

// MessageKey maps a planning error to the key of a localized reply.
func MessageKey(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyText):
		return "empty_text"
	case errors.Is(err, ErrTextTooLong):
		return "text_too_long"
	case errors.Is(err, ErrUnsafeText):
		return "unsafe_text"
	case errors.Is(err, ErrNoTime), errors.Is(err, timeparse.ErrEmptyInput):
		return "no_time"
	case errors.Is(err, timeparse.ErrInPast):
		return "in_past"
	case errors.Is(err, timeparse.ErrTooFar):
		return "too_far"
	case errors.Is(err, timeparse.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, timeparse.ErrBadTimezone):
		return "bad_timezone"
	case errors.Is(err, timeparse.ErrNotParsed):
		return "not_parsed"
	default:
		return "internal"
	}
}
