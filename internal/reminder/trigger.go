package reminder

import (
	"strings"

	"remindpro/internal/lang"
)

// triggers are matched longest first so "remind me " wins over "remind ".
var triggers = []struct {
	phrase string
	lang   lang.Language
}{
	{"напомните мне ", lang.Russian},
	{"напомни мне ", lang.Russian},
	{"напомните ", lang.Russian},
	{"напомни ", lang.Russian},
	{"remind me ", lang.English},
	{"reminder ", lang.English},
	{"remind ", lang.English},
}

// Trigger reports whether content starts with a reminder trigger phrase.
// Returns the byte length of the trigger prefix so the caller can slice past
// it, and the language the phrase is written in.
func Trigger(content string) (int, lang.Language, bool) {
	trimmed := strings.TrimLeft(content, " \t\n")
	offset := len(content) - len(trimmed)
	lower := strings.ToLower(trimmed)
	for _, t := range triggers {
		if strings.HasPrefix(lower, t.phrase) {
			// Lower-casing keeps byte lengths for these alphabets.
			return offset + len(t.phrase), t.lang, true
		}
	}
	return 0, 0, false
}
