package timeparse

import (
	"fmt"
	"strings"
	"time"

	"remindpro/internal/lang"
)

func matchRelative(in *Input) (Match, bool, error) {
	for _, loc := range in.pat.relPrep.FindAllStringIndex(in.Text, -1) {
		m, ok, err := in.relativeBody(in.Text[loc[1]:])
		if err != nil {
			return Match{}, false, err
		}
		if ok {
			return m, true, nil
		}
	}
	return Match{}, false, nil
}

// relativeBody reads "2 часа 30 минут", "an hour and 15 minutes",
// "3 days at 10am" and similar. Offsets beyond the ceiling fail with
// ErrTooFar before any arithmetic can overflow.
func (in *Input) relativeBody(body string) (Match, bool, error) {
	var offsets []lang.Offset
	for {
		body = strings.TrimSpace(body)
		if len(offsets) > 0 {
			if loc := in.pat.conjunction.FindStringIndex(body); loc != nil {
				body = body[loc[1]:]
			}
		}
		if g := groups(in.pat.component, body); g != nil {
			n := len(in.pat.component.FindString(body))
			if letterAt(body, n) {
				break
			}
			unit, _ := lang.Lookup(in.Table.Units, g["unit"])
			amount := atoi(g["n"])
			if amount < 0 {
				return Match{}, false, fmt.Errorf("%w: %s %s", ErrTooFar, g["n"], g["unit"])
			}
			offsets = append(offsets, lang.Offset{Amount: amount, Unit: unit})
			body = body[n:]
			continue
		}
		if w := in.pat.unitPhrase.FindString(body); w != "" && !letterAt(body, len(w)) {
			off, _ := lang.Lookup(in.Table.UnitPhrases, w)
			offsets = append(offsets, off)
			body = body[len(w):]
			continue
		}
		break
	}
	if len(offsets) == 0 {
		return Match{}, false, nil
	}

	var span time.Duration
	total := 0
	largest := lang.Unit(0)
	for _, o := range offsets {
		unit := unitSpan[o.Unit]
		if unit == 0 {
			return Match{}, false, nil
		}
		if o.Amount > int(in.Ceiling/unit) {
			return Match{}, false, fmt.Errorf("%w: %d of %s", ErrTooFar, o.Amount, unit)
		}
		span += time.Duration(o.Amount) * unit
		if span > in.Ceiling {
			return Match{}, false, fmt.Errorf("%w: offset %s", ErrTooFar, span)
		}
		total += o.Amount
		largest = max(largest, o.Unit)
	}
	if total <= 0 {
		return Match{}, false, nil
	}

	t := in.Ref
	for _, o := range offsets {
		switch o.Unit {
		case lang.Minute:
			t = t.Add(time.Duration(o.Amount) * time.Minute)
		case lang.Hour:
			t = t.Add(time.Duration(o.Amount) * time.Hour)
		case lang.Day:
			t = t.AddDate(0, 0, o.Amount)
		case lang.Week:
			t = t.AddDate(0, 0, 7*o.Amount)
		}
	}

	if largest >= lang.Day {
		if g := groups(in.pat.atTime, strings.TrimSpace(body)); g != nil {
			h, m, _, ok := in.clockOf(g)
			if !ok {
				return Match{}, false, nil
			}
			t = on(t, h, m)
		}
	}

	tag := map[lang.Unit]Tag{
		lang.Minute: TagRelativeMinutes,
		lang.Hour:   TagRelativeHours,
		lang.Day:    TagRelativeDays,
		lang.Week:   TagRelativeWeeks,
	}[largest]
	// A day offset with an explicit clock names a specific day.
	return Match{Time: t, Tag: tag, ExplicitDate: largest >= lang.Day}, true, nil
}

var unitSpan = map[lang.Unit]time.Duration{
	lang.Minute: time.Minute,
	lang.Hour:   time.Hour,
	lang.Day:    24 * time.Hour,
	lang.Week:   7 * 24 * time.Hour,
}

// namedDay handles today / tomorrow / the day after tomorrow.
func namedDay(tag Tag, days int) func(*Input) (Match, bool, error) {
	return func(in *Input) (Match, bool, error) {
		var fallback Match
		found := false
		// A clock written before the day word ("at 5pm tomorrow") beats
		// the bare day word.
		for _, re := range in.pat.namedDay[tag] {
			g := groups(re, in.Text)
			if g == nil {
				continue
			}
			h, m, set, ok := in.clockOf(g)
			if !ok {
				continue
			}
			if !set {
				if days == 0 {
					// "today" alone is not a time.
					continue
				}
				h, m = in.DefaultHour, 0
			}
			day := in.Ref.AddDate(0, 0, days)
			match := Match{Time: on(day, h, m), Tag: tag, ExplicitDate: days > 0}
			if set {
				return match, true, nil
			}
			fallback, found = match, true
		}
		return fallback, found, nil
	}
}

// matchWeekday resolves "[next] monday [at 9am]". A plain weekday equal to
// today means today when the time is still ahead, otherwise a week later;
// "next" always skips today.
func matchWeekday(next bool) func(*Input) (Match, bool, error) {
	tag := TagWeekday
	if next {
		tag = TagNextWeekday
	}
	return func(in *Input) (Match, bool, error) {
		var fallback Match
		matched := false
		for _, re := range in.pat.weekday {
			g := groups(re, in.Text)
			if g == nil {
				continue
			}
			if _, hasNext := g["next"]; hasNext != next {
				continue
			}
			wd, found := lang.Lookup(in.Table.Weekdays, g["wd"])
			if !found {
				wd, found = lang.Lookup(in.Table.WeekdayAbbrevs, g["wd"])
			}
			if !found {
				continue
			}
			h, m, set, ok := in.clockOf(g)
			if !ok {
				continue
			}
			if !set {
				h, m = in.DefaultHour, 0
			}
			delta := (wd - weekdayIndex(in.Ref.Weekday()) + 7) % 7
			t := on(in.Ref.AddDate(0, 0, delta), h, m)
			if delta == 0 && (next || !t.After(in.Ref)) {
				t = t.AddDate(0, 0, 7)
			}
			match := Match{Time: t, Tag: tag, ExplicitDate: true}
			if set {
				return match, true, nil
			}
			if !matched {
				fallback, matched = match, true
			}
		}
		return fallback, matched, nil
	}
}

func matchNumericDate(in *Input) (Match, bool, error) {
	g := groups(in.pat.numericDate, in.Text)
	if g == nil {
		return Match{}, false, nil
	}
	_, hasYear := g["y"]
	_, hasHour := g["hour"]
	if !hasYear && !hasHour {
		// "10.30" is a time, not the 30th month.
		return Match{}, false, nil
	}
	return in.calendar(TagNumericDate, g, time.Month(atoi(g["m"])))
}

func matchWordDate(in *Input) (Match, bool, error) {
	for _, re := range in.pat.wordDates {
		g := groups(re, in.Text)
		if g == nil {
			continue
		}
		month, found := lang.Lookup(in.Table.Months, g["mon"])
		if !found {
			continue
		}
		return in.calendar(TagWordDate, g, month)
	}
	return Match{}, false, nil
}

// calendar builds a calendar date from d, y and clock groups. Two-digit
// years are 20YY; a missing year means the reference year.
func (in *Input) calendar(tag Tag, g map[string]string, month time.Month) (Match, bool, error) {
	day := atoi(g["d"])
	year := in.Ref.Year()
	ys, hasYear := g["y"]
	if hasYear {
		year = atoi(ys)
		if year < 100 {
			year += 2000
		}
	}
	h, m, set, ok := in.clockOf(g)
	if !ok {
		return Match{}, false, nil
	}
	if !set {
		h, m = in.DefaultHour, 0
	}
	t := time.Date(year, month, day, h, m, 0, 0, in.Loc)
	if year < 1000 || month < time.January || month > time.December || t.Day() != day || t.Month() != month {
		return Match{}, false, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Match{Time: t, Tag: tag, ExplicitDate: true, YearImplied: !hasYear}, true, nil
}

// bareTime matches a phrase that is nothing but a clock time, resolved
// against the reference day.
func bareTime(tag Tag) func(*Input) (Match, bool, error) {
	return func(in *Input) (Match, bool, error) {
		g := groups(in.pat.bare[tag], in.Text)
		if g == nil {
			return Match{}, false, nil
		}
		h, m, _, ok := in.clockOf(g)
		if !ok {
			return Match{}, false, nil
		}
		return Match{Time: on(in.Ref, h, m), Tag: tag}, true, nil
	}
}
