// Package tzutil validates user timezones and formats instants for display.
package tzutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"remindpro/internal/lang"
)

const Default = "Europe/Moscow"

var ErrUnknownZone = errors.New("tzutil: unknown timezone")

// abbrevs maps common abbreviations to a representative IANA zone, so the
// stored name can always be reloaded with time.LoadLocation.
var abbrevs = map[string]string{
	"UTC":  "UTC",
	"GMT":  "UTC",
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"CET":  "Europe/Berlin",
	"CEST": "Europe/Berlin",
	"BST":  "Europe/London",
	"MSK":  "Europe/Moscow",
	"JST":  "Asia/Tokyo",
	"AEST": "Australia/Sydney",
}

// byOffset is the zone suggested for a whole-hour UTC offset.
var byOffset = map[int]string{
	-12: "Etc/GMT+12",
	-11: "Pacific/Midway",
	-10: "Pacific/Honolulu",
	-9:  "America/Anchorage",
	-8:  "America/Los_Angeles",
	-7:  "America/Denver",
	-6:  "America/Chicago",
	-5:  "America/New_York",
	-4:  "America/Caracas",
	-3:  "America/Sao_Paulo",
	-2:  "Atlantic/South_Georgia",
	-1:  "Atlantic/Azores",
	0:   "UTC",
	1:   "Europe/London",
	2:   "Europe/Berlin",
	3:   "Europe/Moscow",
	4:   "Asia/Dubai",
	5:   "Asia/Karachi",
	6:   "Asia/Dhaka",
	7:   "Asia/Bangkok",
	8:   "Asia/Shanghai",
	9:   "Asia/Tokyo",
	10:  "Australia/Sydney",
	11:  "Pacific/Noumea",
	12:  "Pacific/Auckland",
	13:  "Pacific/Tongatapu",
}

// Popular zones offered as autocomplete choices.
var Popular = []string{
	"Europe/Moscow",
	"Europe/Kaliningrad",
	"Europe/Samara",
	"Asia/Yekaterinburg",
	"Asia/Novosibirsk",
	"Asia/Vladivostok",
	"Europe/Kyiv",
	"Europe/Minsk",
	"Europe/London",
	"Europe/Berlin",
	"America/New_York",
	"America/Los_Angeles",
	"Asia/Tokyo",
	"UTC",
}

var offsetRe = regexp.MustCompile(`^(?i)(?:utc|gmt)?\s*([+-])\s*(\d{1,2})(?::?(\d{2}))?$`)

// Validate reports whether name is a loadable IANA zone.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownZone)
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return nil
}

// Resolve turns user input into a canonical zone name. It accepts IANA
// names in any case, common abbreviations and "UTC+3" style offsets.
func Resolve(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownZone)
	}
	if name, ok := abbrevs[strings.ToUpper(s)]; ok {
		return name, nil
	}
	if m := offsetRe.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		sec := hours*3600 + minutes*60
		if m[1] == "-" {
			sec = -sec
		}
		if hours > 14 || minutes >= 60 {
			return "", fmt.Errorf("%w: offset %q", ErrUnknownZone, s)
		}
		return FromOffset(sec), nil
	}
	if _, err := time.LoadLocation(s); err == nil {
		return s, nil
	}
	if name := canonicalCase(s); name != s {
		if _, err := time.LoadLocation(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownZone, s)
}

// canonicalCase title-cases each path segment: "europe/moscow" → "Europe/Moscow".
func canonicalCase(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		words := strings.Split(p, "_")
		for j, w := range words {
			if w == "" {
				continue
			}
			words[j] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
		parts[i] = strings.Join(words, "_")
	}
	return strings.Join(parts, "/")
}

// FromOffset suggests a zone for an offset east of UTC in seconds, picking
// the nearest whole-hour entry.
func FromOffset(seconds int) string {
	hours := int(math.Round(float64(seconds) / 3600))
	if hours < -12 {
		hours = -12
	}
	if hours > 13 {
		hours = 13
	}
	return byOffset[hours]
}

// Load is time.LoadLocation falling back to the default zone.
func Load(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil && name != "" {
		return loc
	}
	loc, err := time.LoadLocation(Default)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatLocal renders t for a user: "15 января 2024, 14:30" or
// "January 15, 2024, 2:30 PM".
func FormatLocal(t time.Time, l lang.Language) string {
	names := lang.For(l).MonthNames
	month := names[t.Month()-1]
	if l == lang.Russian {
		return fmt.Sprintf("%d %s %d, %s", t.Day(), month, t.Year(), t.Format("15:04"))
	}
	return fmt.Sprintf("%s %d, %d, %s", month, t.Day(), t.Year(), t.Format("3:04 PM"))
}

// FormatOffset renders the zone offset of t as "UTC+3" or "UTC-5:30".
func FormatOffset(t time.Time) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	h, m := off/3600, off%3600/60
	if m != 0 {
		return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
	}
	return fmt.Sprintf("UTC%s%d", sign, h)
}
