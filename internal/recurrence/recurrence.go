// Package recurrence computes the next fire time of repeating reminders and
// recognizes repeat phrases such as "every day" or "по понедельникам".
package recurrence

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Kind is the repeat cadence.
type Kind string

const (
	None   Kind = "none"
	Daily  Kind = "daily"
	Weekly Kind = "weekly"
)

var (
	ErrUnknownKind   = errors.New("recurrence: unknown kind")
	ErrNoWeekdays    = errors.New("recurrence: weekly repeat without weekdays")
	ErrWeekdayRange  = errors.New("recurrence: weekday out of range")
	ErrBadInterval   = errors.New("recurrence: interval must be positive")
	ErrNoOccurrences = errors.New("recurrence: rule yields no occurrence")
)

// Spec describes how a reminder repeats. Weekdays use Monday=0 … Sunday=6.
type Spec struct {
	Kind     Kind
	Weekdays []int
	Interval int
}

// Once is the non-repeating spec.
var Once = Spec{Kind: None}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", None:
		return None, nil
	case Daily, Weekly:
		return k, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Repeats reports whether the spec fires more than once.
func (s Spec) Repeats() bool { return s.Kind == Daily || s.Kind == Weekly }

// Normalize sorts and de-duplicates weekdays and defaults the interval to 1.
// The interval only counts days; weekly specs always step within one week.
func (s Spec) Normalize() Spec {
	if s.Kind == "" {
		s.Kind = None
	}
	if s.Interval <= 0 || s.Kind == Weekly {
		s.Interval = 1
	}
	days := slices.Clone(s.Weekdays)
	slices.Sort(days)
	s.Weekdays = slices.Compact(days)
	if s.Kind != Weekly {
		s.Weekdays = nil
	}
	return s
}

func (s Spec) Validate() error {
	if _, err := ParseKind(string(s.Kind)); err != nil {
		return err
	}
	if s.Interval < 0 {
		return fmt.Errorf("%w: %d", ErrBadInterval, s.Interval)
	}
	for _, d := range s.Weekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: %d", ErrWeekdayRange, d)
		}
	}
	if s.Kind == Weekly && len(s.Weekdays) == 0 {
		return ErrNoWeekdays
	}
	return nil
}

// FormatWeekdays renders weekdays for storage: "0,2,4".
func FormatWeekdays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// ParseWeekdays reads the FormatWeekdays form. Empty input is no weekdays.
func ParseWeekdays(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("recurrence: weekday %q: %w", part, err)
		}
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: %d", ErrWeekdayRange, d)
		}
		days = append(days, d)
	}
	return days, nil
}

// WeekdayOf converts a time's weekday to Monday=0 … Sunday=6.
func WeekdayOf(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

var rruleDays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// rule builds the rrule for s starting at dtstart. Occurrences keep
// dtstart's wall-clock time in dtstart's location.
func rule(s Spec, dtstart time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{Dtstart: dtstart}
	switch s.Kind {
	case Daily:
		opt.Freq = rrule.DAILY
		opt.Interval = s.Interval
	case Weekly:
		opt.Freq = rrule.WEEKLY
		opt.Wkst = rrule.MO
		for _, d := range s.Weekdays {
			opt.Byweekday = append(opt.Byweekday, rruleDays[d])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return rrule.NewRRule(opt)
}

// Next returns the first occurrence strictly after current. ok is false for
// a non-repeating spec: the reminder is done.
func Next(current time.Time, s Spec) (next time.Time, ok bool, err error) {
	return NextAfter(current, current, s)
}

// Align returns the first occurrence at or after t. Weekly anchors that do
// not fall on a selected weekday move forward to the next one.
func Align(t time.Time, s Spec) (time.Time, error) {
	s = s.Normalize()
	t = t.Truncate(time.Minute)
	if s.Kind != Weekly {
		return t, nil
	}
	if err := s.Validate(); err != nil {
		return time.Time{}, err
	}
	r, err := rule(s, t)
	if err != nil {
		return time.Time{}, fmt.Errorf("recurrence: build rule: %w", err)
	}
	next := r.After(t, true)
	if next.IsZero() {
		return time.Time{}, ErrNoOccurrences
	}
	return next, nil
}

// NextAfter returns the first occurrence of the series started at current
// that is strictly after now. Occurrences missed while the process was down
// are skipped in one step.
func NextAfter(current, now time.Time, s Spec) (time.Time, bool, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return time.Time{}, false, err
	}
	if !s.Repeats() {
		return time.Time{}, false, nil
	}
	current = current.Truncate(time.Minute)
	if now.Before(current) {
		now = current
	}
	r, err := rule(s, current)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("recurrence: build rule: %w", err)
	}
	next := r.After(now, false)
	if next.IsZero() {
		return time.Time{}, false, ErrNoOccurrences
	}
	return next.Truncate(time.Minute), true, nil
}
