package timeparse

import (
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"remindpro/internal/lang"
)

// patterns are the compiled expressions of one language.
type patterns struct {
	namedDay map[Tag][]*regexp.Regexp
	weekday  []*regexp.Regexp

	relPrep     *regexp.Regexp
	component   *regexp.Regexp
	unitPhrase  *regexp.Regexp
	conjunction *regexp.Regexp
	atTime      *regexp.Regexp

	numericDate *regexp.Regexp
	wordDates   []*regexp.Regexp

	bare map[Tag]*regexp.Regexp
}

var compiled = map[lang.Language]*patterns{}

func init() {
	for _, l := range lang.All() {
		compiled[l] = compile(l)
	}
}

func patternsFor(l lang.Language) *patterns { return compiled[l] }

// clockExpr matches "9", "9:30", "9.30", "9 pm", "9 утра". Groups: hour,
// min, qual.
func clockExpr(t *lang.Table) string {
	return `(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?(?:\s*(?P<qual>` + lang.Alt(lang.Keys(t.Qualifiers)) + `))?`
}

func compile(l lang.Language) *patterns {
	t := lang.For(l)
	clock := clockExpr(t)
	prep := lang.Alt(t.TimePrepositions)
	atClock := `(?:` + prep + `\s+)?` + clock
	dayPart := `(?P<part>` + lang.Alt(lang.Keys(t.DayParts)) + `)`
	trail := `(?:\s+` + atClock + `|\s+` + dayPart + `)?`

	p := &patterns{
		namedDay: map[Tag][]*regexp.Regexp{},
		bare:     map[Tag]*regexp.Regexp{},
	}

	for tag, words := range map[Tag][]string{
		TagDayAfterTomorrow: t.DayAfterTomorrow,
		TagTomorrow:         t.Tomorrow,
		TagToday:            t.Today,
	} {
		w := lang.Alt(words)
		p.namedDay[tag] = []*regexp.Regexp{
			regexp.MustCompile(lang.Before + w + trail + lang.After),
			regexp.MustCompile(lang.Before + atClock + `\s+` + w + lang.After),
		}
	}

	wd := `(?:` + lang.Alt(t.WeekdayPrepositions) + `\s+)?` +
		`(?:(?P<next>` + lang.Alt(t.NextWords) + `)\s+)?` +
		`(?P<wd>` + lang.Alt(lang.Keys(t.Weekdays), lang.Keys(t.WeekdayAbbrevs)) + `)`
	p.weekday = []*regexp.Regexp{
		regexp.MustCompile(lang.Before + wd + trail + lang.After),
		regexp.MustCompile(lang.Before + atClock + `\s+` + wd + lang.After),
	}

	p.relPrep = regexp.MustCompile(lang.Before + lang.Alt(t.RelativePrepositions) + `\s+`)
	p.component = regexp.MustCompile(`^(?P<n>\d+)\s*(?P<unit>` + lang.Alt(lang.Keys(t.Units)) + `)`)
	p.unitPhrase = regexp.MustCompile(`^` + lang.Alt(lang.Keys(t.UnitPhrases)))
	p.conjunction = regexp.MustCompile(`^` + lang.Alt(t.Conjunctions) + `\s+`)
	p.atTime = regexp.MustCompile(`^` + atClock + lang.After)

	withClock := `(?:\s+` + atClock + `)?`
	months := `(?P<mon>` + lang.Alt(lang.Keys(t.Months)) + `)`
	if t.DayFirst {
		p.numericDate = regexp.MustCompile(lang.Before +
			`(?P<d>\d{1,2})[./](?P<m>\d{1,2})(?:[./](?P<y>\d{2,4}))?` + withClock + lang.After)
		p.wordDates = []*regexp.Regexp{
			regexp.MustCompile(lang.Before +
				`(?P<d>\d{1,2})(?:-?(?:го|ое|е))?\s+` + months +
				`(?:\s+(?P<y>\d{4})(?:\s*(?:года|г))?)?` + withClock + lang.After),
		}
	} else {
		p.numericDate = regexp.MustCompile(lang.Before +
			`(?P<m>\d{1,2})[/-](?P<d>\d{1,2})(?:[/-](?P<y>\d{2,4}))?` + withClock + lang.After)
		p.wordDates = []*regexp.Regexp{
			regexp.MustCompile(lang.Before + months +
				`\.?\s+(?P<d>\d{1,2})(?:st|nd|rd|th)?(?:\s+(?P<y>\d{4}))?` + withClock + lang.After),
			regexp.MustCompile(lang.Before +
				`(?P<d>\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + months +
				`(?:\s+(?P<y>\d{4}))?` + withClock + lang.After),
		}
	}

	p.bare[TagSimpleTime] = regexp.MustCompile(`^` + prep + `\s+` + clock + `$`)
	p.bare[TagTimeOfDay] = regexp.MustCompile(`^(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*(?P<qual>` +
		lang.Alt(lang.Keys(t.Qualifiers)) + `)$`)
	p.bare[TagTimeOnly] = regexp.MustCompile(`^(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?$`)
	return p
}

// groups returns the non-empty named groups of the leftmost match.
func groups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != "" {
			out[name] = m[i]
		}
	}
	return out
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// letterAt reports whether s[i:] starts with a letter.
func letterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}
