package lang

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"ru", Russian},
		{"RU", Russian},
		{"ru-RU", Russian},
		{"en", English},
		{"en_US", English},
		{" en ", English},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Parse(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("de")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, English, ParseOr("fr", English))
}

func TestEveryLanguageHasTable(t *testing.T) {
	for _, l := range All() {
		tbl := For(l)
		assert.NotEmpty(t, tbl.Months, l.Code())
		assert.Len(t, uniqueValues(tbl.Weekdays), 7, l.Code())
		assert.Len(t, uniqueValues(tbl.WeekdayPlurals), 7, l.Code())
		assert.NotEmpty(t, tbl.Qualifiers, l.Code())
		assert.NotEmpty(t, tbl.Today, l.Code())
		assert.NotEmpty(t, tbl.Tomorrow, l.Code())
		assert.NotEmpty(t, tbl.DayAfterTomorrow, l.Code())
		assert.NotEmpty(t, tbl.Examples, l.Code())
	}
	assert.Panics(t, func() { For(Language(42)) })
}

func TestAltLongestFirst(t *testing.T) {
	re := regexp.MustCompile("^" + Alt([]string{"завтра", "послезавтра"}) + "$")
	assert.True(t, re.MatchString("послезавтра"))
	assert.True(t, re.MatchString("завтра"))

	re = regexp.MustCompile(Alt([]string{"day after tomorrow", "tomorrow"}))
	assert.Equal(t, "day after   tomorrow", re.FindString("day after   tomorrow at 5"))
}

func TestLookup(t *testing.T) {
	v, ok := Lookup(For(English).UnitPhrases, "Half  an hour")
	require.True(t, ok)
	assert.Equal(t, Offset{30, Minute}, v)

	_, ok = Lookup(For(Russian).Weekdays, "четвергам")
	assert.False(t, ok)
}

func uniqueValues(m map[string]int) map[int]bool {
	out := map[int]bool{}
	for _, v := range m {
		out[v] = true
	}
	return out
}
