// Package segment splits a reminder utterance into the part that says when
// ("tomorrow at 3 PM") and the part that says what ("Meeting").
package segment

import (
	"regexp"
	"strings"
	"unicode"

	"remindpro/internal/lang"
)

// Split is the result of Extract. Ambiguous is set when no time phrase was
// found; Text then holds the whole input.
type Split struct {
	Time      string
	Text      string
	Ambiguous bool
}

var (
	colonClockRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	dashClockRe  = regexp.MustCompile(`\d{1,2}-\d{2}`)
)

// Extract finds the time phrase in text. It looks for an explicit clock
// ("10:30", "16-00") first and grows it over neighbouring day words; without
// one it peels time units off the end of the utterance, then off the start.
func Extract(text string, l lang.Language) Split {
	text = strings.TrimSpace(text)
	if text == "" || !l.Valid() {
		return Split{Text: text, Ambiguous: true}
	}
	u := compiled[l]
	folded := fold(text)

	if start, end, ok := clockToken(folded); ok {
		start, end = u.grow(folded, start, end)
		return split(text, start, end, l)
	}
	if start, end, ok := u.trailing(folded); ok {
		return split(text, start, end, l)
	}
	if start, end, ok := u.leading(folded); ok {
		return split(text, start, end, l)
	}
	return Split{Text: text, Ambiguous: true}
}

// fold maps ё to е without changing byte offsets.
func fold(s string) string {
	return strings.NewReplacer("ё", "е", "Ё", "Е").Replace(s)
}

// clockToken finds the first H:MM token, falling back to H-MM, that is not
// part of a longer number or date.
func clockToken(s string) (int, int, bool) {
	for _, re := range []*regexp.Regexp{colonClockRe, dashClockRe} {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			start, end := loc[0], loc[1]
			if start > 0 && strings.ContainsRune("0123456789:-./", rune(s[start-1])) {
				continue
			}
			if end < len(s) && strings.ContainsRune("0123456789:-/", rune(s[end])) {
				continue
			}
			return start, end, true
		}
	}
	return 0, 0, false
}

// grow extends [start,end) right over a qualifier and adjacent units, and
// left over a preposition and adjacent units.
func (u *units) grow(s string, start, end int) (int, int) {
	if m := u.qual.FindStringSubmatchIndex(s[end:]); m != nil {
		end += m[3]
	}
	for {
		_, e, ok := u.firstUnit(s[end:])
		if !ok {
			break
		}
		end += e
	}
	if m := u.prep.FindStringSubmatchIndex(s[:start]); m != nil {
		start = m[2]
	}
	for {
		st, _, ok := u.lastUnit(s[:start])
		if !ok {
			break
		}
		start = st
	}
	return start, end
}

// trailing collects units from the end of s.
func (u *units) trailing(s string) (int, int, bool) {
	st, end, ok := u.lastUnit(s)
	if !ok {
		return 0, 0, false
	}
	for {
		next, _, ok := u.lastUnit(s[:st])
		if !ok {
			break
		}
		st = next
	}
	return st, end, true
}

// leading collects units from the start of s.
func (u *units) leading(s string) (int, int, bool) {
	start, end, ok := u.firstUnit(s)
	if !ok {
		return 0, 0, false
	}
	for {
		_, e, ok := u.firstUnit(s[end:])
		if !ok {
			break
		}
		end += e
	}
	return start, end, true
}

func split(text string, start, end int, l lang.Language) Split {
	return Split{
		Time: strings.TrimSpace(text[start:end]),
		Text: residual(text[:start]+" "+text[end:], l),
	}
}

// residual trims filler prepositions and punctuation from both ends.
func residual(s string, l lang.Language) string {
	fillers := map[string]bool{}
	for _, w := range lang.For(l).Fillers {
		fillers[w] = true
	}
	words := strings.Fields(s)
	clean := func(w string) string {
		return strings.ToLower(strings.TrimFunc(w, unicode.IsPunct))
	}
	for len(words) > 0 && (fillers[clean(words[0])] || clean(words[0]) == "") {
		words = words[1:]
	}
	for len(words) > 0 && (fillers[clean(words[len(words)-1])] || clean(words[len(words)-1]) == "") {
		words = words[:len(words)-1]
	}
	out := strings.Join(words, " ")
	return strings.TrimFunc(out, func(r rune) bool {
		return r == ',' || r == ':' || r == ';' || r == '-' || r == '—'
	})
}
