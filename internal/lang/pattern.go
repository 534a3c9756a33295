package lang

import (
	"regexp"
	"sort"
	"strings"
)

// Go's \b only understands ASCII, so Cyrillic words need explicit
// letter/digit boundaries.
const (
	Before = `(?:^|[^\p{L}\p{N}])`
	After  = `(?:$|[^\p{L}\p{N}])`
)

// Alt builds a non-capturing alternation of the given words, longest first
// so that "послезавтра" is tried before "завтра" and "среду" before "сред".
// Spaces inside phrases match any run of whitespace.
func Alt(words ...[]string) string {
	seen := map[string]bool{}
	var all []string
	for _, ws := range words {
		for _, w := range ws {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			all = append(all, w)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})
	quoted := make([]string, len(all))
	for i, w := range all {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// Keys returns the keys of a vocabulary map.
func Keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Lookup finds w in a vocabulary map after collapsing inner whitespace.
func Lookup[V any](m map[string]V, w string) (V, bool) {
	v, ok := m[strings.Join(strings.Fields(strings.ToLower(w)), " ")]
	return v, ok
}
