package timeparse

import (
	"regexp"
	"strings"

	"remindpro/internal/lang"
)

var (
	meridiemRe = regexp.MustCompile(`(\d)\s*([ap])\.\s*m\.?`)
	dashTimeRe = regexp.MustCompile(`\d{1,2}-\d{2}`)
	followedRe = regexp.MustCompile(`^\s+(?:at\s+)?\d`)
)

// Normalize lower-cases the phrase, folds ё to е, collapses whitespace and
// punctuation noise, spells "p.m." as "pm" and rewrites dash times such as
// "16-00" to "16:00". English "12-31 10:00" stays a month-day date.
func Normalize(text string, l lang.Language) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "ё", "е")
	s = meridiemRe.ReplaceAllString(s, "$1 ${2}m")
	s = strings.NewReplacer(",", " ", ";", " ", "!", " ", "?", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, ".")
	return dashTimes(s, l)
}

func dashTimes(s string, l lang.Language) string {
	var b strings.Builder
	last := 0
	for _, loc := range dashTimeRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && strings.ContainsRune("0123456789-/.", rune(s[start-1])) {
			continue
		}
		if end < len(s) && strings.ContainsRune("0123456789-/", rune(s[end])) {
			continue
		}
		if l == lang.English && followedRe.MatchString(s[end:]) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(strings.Replace(s[start:end], "-", ":", 1))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}
