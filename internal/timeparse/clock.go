package timeparse

import (
	"time"

	"remindpro/internal/lang"
)

// ResolveHour applies a time-of-day qualifier to a written hour.
//
//	en: 12 am → 0, 12 pm → 12, other pm hours +12, am unchanged.
//	ru: дня/вечера add 12 below noon, 12 ночи → 0, утра unchanged.
//
// ok is false when the resulting hour is outside 0..23.
func ResolveHour(hour int, q lang.Qualifier) (int, bool) {
	switch q {
	case lang.AM:
		if hour == 12 {
			hour = 0
		}
	case lang.PM:
		if hour != 12 {
			hour += 12
		}
	case lang.Afternoon, lang.Evening:
		if hour < 12 {
			hour += 12
		}
	case lang.Night:
		if hour == 12 {
			hour = 0
		}
	}
	return hour, hour >= 0 && hour <= 23
}

// clockOf reads hour, min, qual and part groups. With no hour and no day
// part it returns ok=false and set=false.
func (in *Input) clockOf(g map[string]string) (hour, minute int, set, ok bool) {
	if part, has := g["part"]; has {
		h, found := lang.Lookup(in.Table.DayParts, part)
		return h, 0, true, found
	}
	hs, has := g["hour"]
	if !has {
		return 0, 0, false, true
	}
	hour = atoi(hs)
	if ms, has := g["min"]; has {
		minute = atoi(ms)
		if minute < 0 || minute > 59 {
			return 0, 0, true, false
		}
	}
	q, _ := lang.Lookup(in.Table.Qualifiers, g["qual"])
	hour, ok = ResolveHour(hour, q)
	return hour, minute, true, ok
}

// on returns the wall-clock time h:m on the calendar day of day.
func on(day time.Time, h, m int) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location())
}

// weekdayIndex converts time.Weekday to Monday=0 … Sunday=6.
func weekdayIndex(w time.Weekday) int { return (int(w) + 6) % 7 }

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
