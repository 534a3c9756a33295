// Package timeparse turns Russian and English time phrases ("через 2 часа",
// "tomorrow at 3 pm", "31.12.2024 23:59") into absolute instants in the
// user's timezone.
//
// A Parser tries an ordered list of strategies; the first match wins. The
// match is then truncated to the minute and pushed forward when it is not in
// the future: bare times move to the next day, year-less dates to the next
// year. Everything else that is not in the future is rejected.
package timeparse

import (
	"fmt"
	"strings"
	"time"

	"remindpro/internal/lang"
)

const (
	DefaultCeiling     = 5 * 365 * 24 * time.Hour
	DefaultHour        = 9
	DefaultCacheSize   = 1000
	DefaultCacheExpiry = time.Hour
)

// Options configures a Parser. Zero values select the defaults.
type Options struct {
	Cache       Cache
	Now         func() time.Time
	Ceiling     time.Duration
	DefaultHour int
	Strategies  []Strategy
}

// Parser is safe for concurrent use.
type Parser struct {
	cache       Cache
	now         func() time.Time
	ceiling     time.Duration
	defaultHour int
	strategies  []Strategy
}

func New(opts Options) *Parser {
	p := &Parser{
		cache:       opts.Cache,
		now:         opts.Now,
		ceiling:     opts.Ceiling,
		defaultHour: opts.DefaultHour,
		strategies:  opts.Strategies,
	}
	if p.cache == nil {
		p.cache = NewLRUCache(DefaultCacheSize, DefaultCacheExpiry)
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.ceiling <= 0 {
		p.ceiling = DefaultCeiling
	}
	if p.defaultHour <= 0 || p.defaultHour > 23 {
		p.defaultHour = DefaultHour
	}
	if len(p.strategies) == 0 {
		p.strategies = DefaultStrategies()
	}
	return p
}

// Strategies returns the evaluation order.
func (p *Parser) Strategies() []string {
	names := make([]string, len(p.strategies))
	for i, s := range p.strategies {
		names[i] = s.Name()
	}
	return names
}

// Cache returns the parser's memoization cache.
func (p *Parser) Cache() Cache { return p.cache }

// DefaultHour is the hour used for dates given without a clock.
func (p *Parser) DefaultHour() int { return p.defaultHour }

// Now reads the parser's clock.
func (p *Parser) Now() time.Time { return p.now() }

// ParseNow parses relative to the parser's clock.
func (p *Parser) ParseNow(text string, l lang.Language, tz string) (Result, error) {
	return p.Parse(text, l, tz, p.now())
}

// Parse resolves text against ref in the zone tz. A zero ref means now.
// On success the instant is strictly after ref, minute-precise and carries
// tz's location.
func (p *Parser) Parse(text string, l lang.Language, tz string, ref time.Time) (Result, error) {
	norm := Normalize(text, l)
	if norm == "" {
		return Result{Tag: TagEmpty}, ErrEmptyInput
	}
	if !l.Valid() {
		return Result{Tag: TagNotParsed}, fmt.Errorf("%w: %w", ErrNotParsed, lang.ErrUnsupported)
	}
	if strings.TrimSpace(tz) == "" {
		return Result{Tag: TagBadTimezone}, fmt.Errorf("%w: empty name", ErrBadTimezone)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Result{Tag: TagBadTimezone}, fmt.Errorf("%w: %q", ErrBadTimezone, tz)
	}
	if ref.IsZero() {
		ref = p.now()
	}
	ref = ref.In(loc)

	key := CacheKey{Text: norm, Lang: l, Zone: tz, RefMinute: ref.Unix() / 60}
	if out, ok := p.cache.Get(key); ok {
		return out.Result, out.Err
	}
	res, err := p.resolve(&Input{
		Raw:         strings.TrimSpace(text),
		Text:        norm,
		Lang:        l,
		Table:       lang.For(l),
		Loc:         loc,
		Ref:         ref,
		DefaultHour: p.defaultHour,
		Ceiling:     p.ceiling,
		pat:         patternsFor(l),
	})
	p.cache.Add(key, Outcome{Result: res, Err: err})
	return res, err
}

// resolve runs the strategies in order. A strategy that recognizes the
// phrase but rejects its value stops the cascade, so a later, broader rule
// can never reinterpret "31.02" as some other day.
func (p *Parser) resolve(in *Input) (Result, error) {
	for _, s := range p.strategies {
		m, ok, err := s.TryMatch(in)
		if err != nil {
			return Result{Tag: FailureTag(err)}, err
		}
		if ok {
			return p.settle(m, in.Ref)
		}
	}
	return Result{Tag: TagNotParsed}, ErrNotParsed
}

// settle applies the roll-forward policy to a raw match.
func (p *Parser) settle(m Match, ref time.Time) (Result, error) {
	t := m.Time.In(ref.Location()).Truncate(time.Minute)
	adjusted := false
	if !t.After(ref) {
		switch {
		case !m.ExplicitDate:
			t = t.AddDate(0, 0, 1)
			adjusted = true
		case m.YearImplied:
			t = t.AddDate(1, 0, 0)
			adjusted = true
		}
	}
	if !t.After(ref) {
		return Result{Tag: TagInPast}, fmt.Errorf("%w: %s resolved to %s", ErrInPast, m.Tag, t.Format(time.RFC3339))
	}
	if t.After(ref.Add(p.ceiling)) {
		return Result{Tag: TagTooFar}, fmt.Errorf("%w: %s resolved to %s", ErrTooFar, m.Tag, t.Format(time.RFC3339))
	}
	return Result{Instant: t, Tag: m.Tag, Adjusted: adjusted}, nil
}
