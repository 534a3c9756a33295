package timeparse

import (
	"time"

	"remindpro/internal/lang"
)

// Input is what every strategy sees: the normalized phrase plus the
// resolution context. Strategies must not modify it.
type Input struct {
	Raw         string // trimmed, original case
	Text        string // normalized
	Lang        lang.Language
	Table       *lang.Table
	Loc         *time.Location
	Ref         time.Time // reference instant in Loc
	DefaultHour int
	Ceiling     time.Duration // furthest allowed distance from Ref

	pat *patterns
}

// Match is a raw strategy result before the roll-forward policy is applied.
type Match struct {
	Time time.Time
	Tag  Tag

	// ExplicitDate marks results that name a specific day. They are never
	// rolled by a day when non-future.
	ExplicitDate bool
	// YearImplied marks calendar dates written without a year. A past one is
	// promoted to next year.
	YearImplied bool
}

// Strategy is one recognition rule. TryMatch returns ok=false when the rule
// does not apply; a non-nil error means the rule recognized the shape of
// the phrase but its value is unusable (ErrInvalidDate, ErrTooFar). An
// error ends the cascade.
type Strategy interface {
	Name() string
	TryMatch(in *Input) (Match, bool, error)
}

type rule struct {
	name string
	fn   func(in *Input) (Match, bool, error)
}

func (r rule) Name() string                            { return r.name }
func (r rule) TryMatch(in *Input) (Match, bool, error) { return r.fn(in) }

// DefaultStrategies returns the rules in their fixed evaluation order.
// Earlier rules win, so more specific shapes come first and the broad
// natural-language search comes last.
func DefaultStrategies() []Strategy {
	return []Strategy{
		rule{string(TagGrammar), matchLayouts},
		rule{"relative", matchRelative},
		rule{string(TagDayAfterTomorrow), namedDay(TagDayAfterTomorrow, 2)},
		rule{string(TagTomorrow), namedDay(TagTomorrow, 1)},
		rule{string(TagToday), namedDay(TagToday, 0)},
		rule{string(TagNextWeekday), matchWeekday(true)},
		rule{string(TagWeekday), matchWeekday(false)},
		rule{string(TagNumericDate), matchNumericDate},
		rule{string(TagWordDate), matchWordDate},
		rule{string(TagSimpleTime), bareTime(TagSimpleTime)},
		rule{string(TagTimeOfDay), bareTime(TagTimeOfDay)},
		rule{string(TagTimeOnly), bareTime(TagTimeOnly)},
		newSearch(),
	}
}
