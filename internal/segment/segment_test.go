package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"remindpro/internal/lang"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		l     lang.Language
		want  Split
	}{
		{"Meeting tomorrow at 3 PM", lang.English, Split{Time: "tomorrow at 3 PM", Text: "Meeting"}},
		{"Buy milk in 2 hours", lang.English, Split{Time: "in 2 hours", Text: "Buy milk"}},
		{"Standup every Monday and Wednesday at 9:30", lang.English, Split{Time: "every Monday and Wednesday at 9:30", Text: "Standup"}},
		{"Call mom at 16-00", lang.English, Split{Time: "at 16-00", Text: "Call mom"}},
		{"Pay rent on 12/31/2024 at 10:00", lang.English, Split{Time: "on 12/31/2024 at 10:00", Text: "Pay rent"}},
		{"Tomorrow at 8 AM: gym", lang.English, Split{Time: "Tomorrow at 8 AM", Text: "gym"}},
		{"Dentist on Friday", lang.English, Split{Time: "on Friday", Text: "Dentist"}},
		{"Позвонить маме завтра в 10:30", lang.Russian, Split{Time: "завтра в 10:30", Text: "Позвонить маме"}},
		{"Завтра в 10:30 позвонить маме", lang.Russian, Split{Time: "Завтра в 10:30", Text: "позвонить маме"}},
		{"Купить хлеб через 2 часа 30 минут", lang.Russian, Split{Time: "через 2 часа 30 минут", Text: "Купить хлеб"}},
		{"Зарядка каждый день в 8 утра", lang.Russian, Split{Time: "каждый день в 8 утра", Text: "Зарядка"}},
		{"Планерка по понедельникам в 10:00", lang.Russian, Split{Time: "по понедельникам в 10:00", Text: "Планерка"}},
		{"В 8 вечера выключить духовку", lang.Russian, Split{Time: "В 8 вечера", Text: "выключить духовку"}},
		{"Отчёт в пятницу в 17:00", lang.Russian, Split{Time: "в пятницу в 17:00", Text: "Отчёт"}},
		{"Презентация на завтра в 15:00", lang.Russian, Split{Time: "завтра в 15:00", Text: "Презентация"}},
		{"Купить подарок 31.12.2024 23:59", lang.Russian, Split{Time: "31.12.2024 23:59", Text: "Купить подарок"}},
		{"Полить цветы послезавтра вечером", lang.Russian, Split{Time: "послезавтра вечером", Text: "Полить цветы"}},
		{"Оплатить счет 15 января", lang.Russian, Split{Time: "15 января", Text: "Оплатить счет"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input, tt.l))
		})
	}
}

func TestExtractAmbiguous(t *testing.T) {
	for _, input := range []string{"просто текст", "buy 3 apples", ""} {
		got := Extract(input, lang.English)
		assert.True(t, got.Ambiguous, input)
		assert.Empty(t, got.Time, input)
		assert.Equal(t, input, got.Text)
	}
}

func TestClockTokenIgnoresLongerNumbers(t *testing.T) {
	_, _, ok := clockToken("call 123:456")
	assert.False(t, ok)
	_, _, ok = clockToken("2024-01-15")
	assert.False(t, ok)

	start, end, ok := clockToken("12-31 10:00")
	assert.True(t, ok)
	assert.Equal(t, "10:00", "12-31 10:00"[start:end])
}
