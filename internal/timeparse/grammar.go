package timeparse

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"

	"remindpro/internal/lang"
)

type layout struct {
	format  string
	hasDate bool
	hasTime bool
}

// Machine-readable layouts. Plain "15:04" is left to the bare-time rules.
var layouts = []layout{
	{time.RFC3339, true, true},
	{"2006-01-02T15:04:05", true, true},
	{"2006-01-02T15:04", true, true},
	{"2006-01-02 15:04:05", true, true},
	{"2006-01-02 15:04", true, true},
	{"2006/01/02 15:04", true, true},
	{"02.01.2006 15:04:05", true, true},
	{"02.01.2006 15:04", true, true},
	{"2006-01-02", true, false},
	{"2006/01/02", true, false},
	{"15:04:05", false, true},
}

func matchLayouts(in *Input) (Match, bool, error) {
	s := strings.ToUpper(in.Raw)
	for _, l := range layouts {
		var (
			t   time.Time
			err error
		)
		if l.format == time.RFC3339 {
			t, err = time.Parse(l.format, s)
			t = t.In(in.Loc)
		} else {
			t, err = time.ParseInLocation(l.format, s, in.Loc)
		}
		if err != nil {
			continue
		}
		switch {
		case !l.hasDate:
			t = on(in.Ref, t.Hour(), t.Minute())
		case !l.hasTime:
			t = on(t, in.DefaultHour, 0)
		}
		return Match{Time: t, Tag: TagGrammar, ExplicitDate: l.hasDate}, true, nil
	}
	return Match{}, false, nil
}

// search wraps the olebedev/when natural-language engine, one parser per
// language since each carries its own rule set.
type search struct {
	parsers map[lang.Language]*when.Parser
}

func newSearch() *search {
	s := &search{parsers: map[lang.Language]*when.Parser{}}
	for _, l := range lang.All() {
		w := when.New(&rules.Options{
			Distance:     5,
			MatchByOrder: true,
		})
		switch l {
		case lang.Russian:
			w.Add(ru.All...)
		case lang.English:
			w.Add(en.All...)
		}
		w.Add(common.All...)
		s.parsers[l] = w
	}
	return s
}

func (s *search) Name() string { return string(TagGrammarSearch) }

func (s *search) TryMatch(in *Input) (Match, bool, error) {
	w, ok := s.parsers[in.Lang]
	if !ok {
		return Match{}, false, nil
	}
	r, err := w.Parse(in.Text, in.Ref)
	if err != nil || r == nil {
		return Match{}, false, nil
	}
	t := r.Time.In(in.Loc)
	// A bare "today" comes back as the reference itself; it names no time.
	if t.Truncate(time.Minute).Equal(in.Ref.Truncate(time.Minute)) {
		return Match{}, false, nil
	}
	// Results on the reference day behave like a bare time.
	return Match{Time: t, Tag: TagGrammarSearch, ExplicitDate: !sameDate(t, in.Ref)}, true, nil
}
