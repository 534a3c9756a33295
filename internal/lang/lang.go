// Package lang holds the two supported languages and the immutable
// vocabulary tables the parser, the segmenter and the recurrence detector
// are built from.
package lang

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Language is a supported user language.
type Language int

const (
	Russian Language = iota
	English

	numLanguages
)

// ErrUnsupported is returned by Parse for codes outside ru/en.
var ErrUnsupported = errors.New("lang: unsupported language")

var codes = [numLanguages]string{
	Russian: "ru",
	English: "en",
}

// All returns every supported language in declaration order.
func All() []Language {
	out := make([]Language, 0, numLanguages)
	for l := Language(0); l < numLanguages; l++ {
		out = append(out, l)
	}
	return out
}

// Parse maps an IETF-ish code ("ru", "en-US", "RU") to a Language.
func Parse(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for l, c := range codes {
		if c == code {
			return Language(l), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, code)
}

// ParseOr is Parse with a fallback for unknown codes.
func ParseOr(code string, fallback Language) Language {
	l, err := Parse(code)
	if err != nil {
		return fallback
	}
	return l
}

// Code returns the two-letter code.
func (l Language) Code() string {
	if l < 0 || l >= numLanguages {
		return "unknown"
	}
	return codes[l]
}

func (l Language) String() string { return l.Code() }

// Valid reports whether l is one of the declared languages.
func (l Language) Valid() bool { return l >= 0 && l < numLanguages }

// Qualifier is a time-of-day marker following an hour.
type Qualifier int

const (
	NoQualifier Qualifier = iota
	AM
	PM
	Morning   // утра
	Afternoon // дня
	Evening   // вечера
	Night     // ночи
)

// Unit is a relative offset unit.
type Unit int

const (
	Minute Unit = iota + 1
	Hour
	Day
	Week
)

// Offset is a fixed relative phrase such as "полчаса" or "an hour".
type Offset struct {
	Amount int
	Unit   Unit
}

// Table is the vocabulary of one language. Tables are never mutated after
// package initialization.
type Table struct {
	// DayFirst selects D.M (true) or M/D (false) numeric dates.
	DayFirst bool

	Today            []string
	Tomorrow         []string
	DayAfterTomorrow []string

	Months         map[string]time.Month
	Weekdays       map[string]int // full names and inflections, Monday=0
	WeekdayAbbrevs map[string]int
	WeekdayPlurals map[string]int
	WeekdayGroups  map[string][]int

	Qualifiers map[string]Qualifier
	DayParts   map[string]int // day-part word → default hour

	Units       map[string]Unit
	UnitPhrases map[string]Offset

	RelativePrepositions []string
	TimePrepositions     []string
	WeekdayPrepositions  []string
	NextWords            []string
	Conjunctions         []string
	Fillers              []string

	RepeatDaily        []string
	RepeatOtherDay     []string
	RepeatWeekly       []string
	RepeatEveryPrefix  []string // "every" / "каждый" before any weekday form
	RepeatPluralPrefix []string // "on" / "по", only before plurals and groups
	RepeatEveryN       []string // "every" / "каждые" before "N days"

	MonthNames   [12]string
	WeekdayNames [7]string
	Examples     []string
}

// For returns the table for l. It panics on an undeclared language, which
// can only happen through an unchecked conversion.
func For(l Language) *Table {
	if !l.Valid() {
		panic(fmt.Sprintf("lang: no table for language %d", int(l)))
	}
	return &tables[l]
}
