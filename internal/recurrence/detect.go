package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"remindpro/internal/lang"
)

const (
	before = `(?i)(?:^|[^\p{L}\p{N}])`
	after  = `(?:$|[^\p{L}\p{N}])`
)

type detector struct {
	otherDay *regexp.Regexp
	everyN   *regexp.Regexp
	daily    *regexp.Regexp
	weekly   *regexp.Regexp
	strong   *regexp.Regexp // "every monday and friday"
	plural   *regexp.Regexp // "on mondays", "по будням"
	dayToken *regexp.Regexp
}

var detectors = map[lang.Language]*detector{}

func init() {
	for _, l := range lang.All() {
		detectors[l] = newDetector(lang.For(l))
	}
}

func newDetector(t *lang.Table) *detector {
	days := lang.Alt(lang.Keys(t.Weekdays), lang.Keys(t.WeekdayPlurals), lang.Keys(t.WeekdayGroups))
	list := days + `(?:(?:\s*,\s*|\s+` + lang.Alt(t.Conjunctions) + `\s+)` + days + `)*`
	return &detector{
		otherDay: regexp.MustCompile(before + `(` + lang.Alt(t.RepeatOtherDay) + `)` + after),
		everyN:   regexp.MustCompile(before + `(` + lang.Alt(t.RepeatEveryN) + `\s+(?P<n>\d+)\s*(?P<unit>` + lang.Alt(lang.Keys(t.Units)) + `))` + after),
		daily:    regexp.MustCompile(before + `(` + lang.Alt(t.RepeatDaily) + `)` + after),
		weekly:   regexp.MustCompile(before + `(` + lang.Alt(t.RepeatWeekly) + `)` + after),
		strong:   regexp.MustCompile(before + `(` + lang.Alt(t.RepeatEveryPrefix) + `\s+` + list + `)` + after),
		plural:   regexp.MustCompile(before + `(` + lang.Alt(t.RepeatPluralPrefix) + `\s+` + list + `)` + after),
		dayToken: regexp.MustCompile(`(?i)` + days),
	}
}

// Detect finds a repeat phrase in text and returns its spec together with
// the text with the phrase cut out. Without a phrase it returns Once and the
// text unchanged. Weekly specs from "every week" carry no weekdays; the
// caller fills them from the anchor.
func Detect(text string, l lang.Language) (Spec, string) {
	d, ok := detectors[l]
	if !ok {
		return Once, text
	}
	t := lang.For(l)

	if loc := d.otherDay.FindStringSubmatchIndex(text); loc != nil {
		return Spec{Kind: Daily, Interval: 2}, cut(text, loc[2], loc[3])
	}
	if m := d.everyN.FindStringSubmatchIndex(text); m != nil {
		n, _ := strconv.Atoi(text[m[4]:m[5]])
		unit, _ := lang.Lookup(t.Units, text[m[6]:m[7]])
		if unit == lang.Week {
			// "every 2 weeks" keeps the anchor's weekday: a 14 day cycle.
			n *= 7
		}
		if n > 0 && (unit == lang.Day || unit == lang.Week) {
			return Spec{Kind: Daily, Interval: n}, cut(text, m[2], m[3])
		}
	}
	if loc := d.daily.FindStringSubmatchIndex(text); loc != nil {
		return Spec{Kind: Daily, Interval: 1}, cut(text, loc[2], loc[3])
	}
	if loc := d.strong.FindStringSubmatchIndex(text); loc != nil {
		if days := d.weekdays(t, text[loc[2]:loc[3]], true); len(days) > 0 {
			return Spec{Kind: Weekly, Weekdays: days, Interval: 1}.Normalize(), cut(text, loc[2], loc[3])
		}
	}
	if loc := d.plural.FindStringSubmatchIndex(text); loc != nil {
		if days := d.weekdays(t, text[loc[2]:loc[3]], false); len(days) > 0 {
			return Spec{Kind: Weekly, Weekdays: days, Interval: 1}.Normalize(), cut(text, loc[2], loc[3])
		}
	}
	if loc := d.weekly.FindStringSubmatchIndex(text); loc != nil {
		return Spec{Kind: Weekly, Interval: 1}, cut(text, loc[2], loc[3])
	}
	return Once, text
}

// weekdays collects the days named in phrase. Unless singular is allowed,
// a bare "monday" does not count: "on monday" is a single date.
func (d *detector) weekdays(t *lang.Table, phrase string, singular bool) []int {
	var days []int
	for _, w := range d.dayToken.FindAllString(phrase, -1) {
		if g, ok := lang.Lookup(t.WeekdayGroups, w); ok {
			days = append(days, g...)
			continue
		}
		if p, ok := lang.Lookup(t.WeekdayPlurals, w); ok {
			days = append(days, p)
			continue
		}
		if s, ok := lang.Lookup(t.Weekdays, w); ok && singular {
			days = append(days, s)
		}
	}
	return days
}

func cut(text string, start, end int) string {
	return strings.Join(strings.Fields(text[:start]+" "+text[end:]), " ")
}

// Describe renders the spec for humans: "every day", "по будням",
// "every Monday, Friday".
func (s Spec) Describe(l lang.Language) string {
	s = s.Normalize()
	t := lang.For(l)
	ru := l == lang.Russian
	switch s.Kind {
	case Daily:
		switch {
		case s.Interval == 1 && ru:
			return "каждый день"
		case s.Interval == 1:
			return "every day"
		case s.Interval == 2 && ru:
			return "через день"
		case s.Interval == 2:
			return "every other day"
		case s.Interval == 7 && ru:
			return "каждую неделю"
		case s.Interval == 7:
			return "every week"
		case s.Interval%7 == 0 && ru:
			return fmt.Sprintf("каждые %d нед.", s.Interval/7)
		case s.Interval%7 == 0:
			return fmt.Sprintf("every %d weeks", s.Interval/7)
		case ru:
			return fmt.Sprintf("каждые %d дн.", s.Interval)
		default:
			return fmt.Sprintf("every %d days", s.Interval)
		}
	case Weekly:
		return describeDays(t, s.Weekdays, ru)
	default:
		return ""
	}
}

func describeDays(t *lang.Table, days []int, ru bool) string {
	switch FormatWeekdays(days) {
	case "0,1,2,3,4":
		if ru {
			return "по будням"
		}
		return "on weekdays"
	case "5,6":
		if ru {
			return "по выходным"
		}
		return "on weekends"
	case "0,1,2,3,4,5,6":
		if ru {
			return "каждый день"
		}
		return "every day"
	}
	names := make([]string, len(days))
	if ru {
		for i, d := range days {
			for w, v := range t.WeekdayPlurals {
				if v == d {
					names[i] = w
				}
			}
		}
		return "по " + strings.Join(names, ", ")
	}
	for i, d := range days {
		names[i] = t.WeekdayNames[d]
	}
	return "every " + strings.Join(names, ", ")
}
