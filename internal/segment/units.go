package segment

import (
	"regexp"

	"remindpro/internal/lang"
)

const (
	boundary = `[^\p{L}\p{N}]`
	clockNum = `\d{1,2}(?:[:.\-]\d{2})?`
)

// units are the building blocks of a time phrase. A phrase is a run of
// adjacent units, e.g. "tomorrow" + "at 3 pm".
type units struct {
	suffix []*regexp.Regexp // unit at the end of a string
	prefix []*regexp.Regexp // unit at the start of a string
	prep   *regexp.Regexp   // lone time preposition at the end
	qual   *regexp.Regexp   // qualifier right after a clock token
}

var compiled = map[lang.Language]*units{}

func init() {
	for _, l := range lang.All() {
		compiled[l] = compile(lang.For(l))
	}
}

func bodies(t *lang.Table) []string {
	prep := lang.Alt(t.TimePrepositions)
	qual := lang.Alt(lang.Keys(t.Qualifiers))
	wdPrep := lang.Alt(t.WeekdayPrepositions)
	weekday := lang.Alt(lang.Keys(t.Weekdays), lang.Keys(t.WeekdayAbbrevs))
	wdAny := lang.Alt(lang.Keys(t.Weekdays), lang.Keys(t.WeekdayPlurals), lang.Keys(t.WeekdayGroups))
	conj := `(?:\s*,\s*|\s+` + lang.Alt(t.Conjunctions) + `\s+)`
	months := lang.Alt(lang.Keys(t.Months))
	amount := `\d+\s*` + lang.Alt(lang.Keys(t.Units))

	b := []string{
		// clock with a qualifier or a preposition
		`(?:` + prep + `\s+)?` + clockNum + `\s*` + qual,
		prep + `\s+` + clockNum + `(?:\s*` + qual + `)?`,
		// day words
		lang.Alt(t.Today, t.Tomorrow, t.DayAfterTomorrow),
		lang.Alt(lang.Keys(t.DayParts)),
		`(?:` + wdPrep + `\s+)?(?:` + lang.Alt(t.NextWords) + `\s+)?` + weekday,
		// repeats
		lang.Alt(t.RepeatDaily, t.RepeatOtherDay, t.RepeatWeekly),
		lang.Alt(t.RepeatEveryPrefix, t.RepeatPluralPrefix) + `\s+` + wdAny + `(?:` + conj + wdAny + `)*`,
		lang.Alt(t.RepeatEveryN) + `\s+\d+\s*` + lang.Alt(repeatUnits(t)),
		// relative offsets
		lang.Alt(t.RelativePrepositions) + `\s+(?:` + amount + `|` + lang.Alt(lang.Keys(t.UnitPhrases)) + `)` +
			`(?:` + conj + `?\s*` + amount + `)*`,
		// dates
		`\d{4}-\d{2}-\d{2}(?:[ t]\d{1,2}:\d{2}(?::\d{2})?)?`,
	}
	if t.DayFirst {
		b = append(b,
			`(?:`+wdPrep+`\s+)?\d{1,2}\.\d{1,2}(?:\.\d{2,4})?`,
			`(?:`+wdPrep+`\s+)?\d{1,2}(?:-?(?:го|ое|е))?\s+`+months+`(?:\s+\d{4}(?:\s*(?:года|г))?)?`,
		)
	} else {
		b = append(b,
			`(?:`+wdPrep+`\s+)?\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?`,
			`(?:`+wdPrep+`\s+)?`+months+`\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:\s+\d{4})?`,
			`(?:`+wdPrep+`\s+)?(?:the\s+)?\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?`+months+`(?:\s+\d{4})?`,
		)
	}
	return b
}

func repeatUnits(t *lang.Table) []string {
	var out []string
	for w, u := range t.Units {
		if u == lang.Day || u == lang.Week {
			out = append(out, w)
		}
	}
	return out
}

func compile(t *lang.Table) *units {
	u := &units{
		prep: regexp.MustCompile(`(?i)(?:^|` + boundary + `)(` + lang.Alt(t.TimePrepositions) + `)\s+$`),
		qual: regexp.MustCompile(`(?i)^\s*(` + lang.Alt(lang.Keys(t.Qualifiers)) + `)(?:$|` + boundary + `)`),
	}
	for _, body := range bodies(t) {
		u.suffix = append(u.suffix, regexp.MustCompile(`(?i)(?:^|`+boundary+`)(`+body+`)`+boundary+`*$`))
		u.prefix = append(u.prefix, regexp.MustCompile(`(?i)^`+boundary+`*(`+body+`)(?:$|`+boundary+`)`))
	}
	return u
}

// lastUnit returns the span of the longest unit ending s, ignoring trailing
// punctuation.
func (u *units) lastUnit(s string) (start, end int, ok bool) {
	start = len(s) + 1
	for _, re := range u.suffix {
		m := re.FindStringSubmatchIndex(s)
		if m == nil {
			continue
		}
		if m[2] < start {
			start, end, ok = m[2], m[3], true
		}
	}
	return start, end, ok
}

// firstUnit returns the span of the longest unit starting s.
func (u *units) firstUnit(s string) (start, end int, ok bool) {
	end = -1
	for _, re := range u.prefix {
		m := re.FindStringSubmatchIndex(s)
		if m == nil {
			continue
		}
		if m[3] > end {
			start, end, ok = m[2], m[3], true
		}
	}
	return start, end, ok
}
