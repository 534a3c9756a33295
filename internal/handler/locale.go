package handler

import (
	"fmt"

	"remindpro/internal/lang"
)

// texts holds every reply, indexed by lang.Language (ru, en).
var texts = map[string][2]string{
	"empty_text":    {"Текст напоминания пуст.", "The reminder text is empty."},
	"text_too_long": {"Текст напоминания длиннее %d символов.", "The reminder text is longer than %d characters."},
	"unsafe_text":   {"Текст напоминания содержит недопустимую разметку.", "The reminder text contains markup that is not allowed."},
	"no_time": {
		"Не нашёл время в сообщении. Например: «позвонить маме завтра в 10:00». Больше примеров: /examples",
		"I couldn't find a time in the message. For example: \"call mom tomorrow at 10 AM\". More examples: /examples",
	},
	"not_parsed":   {"Не понял время «%s». Примеры: /examples", "I couldn't understand the time \"%s\". See /examples"},
	"in_past":      {"Это время уже прошло.", "That time is already in the past."},
	"too_far":      {"Это слишком далеко в будущем.", "That is too far in the future."},
	"invalid_date": {"Такой даты не существует.", "That date does not exist."},
	"bad_timezone": {"Неизвестный часовой пояс «%s».", "Unknown timezone \"%s\"."},
	"too_many":     {"Слишком много активных напоминаний (максимум %d).", "Too many active reminders (limit %d)."},
	"internal":     {"Что-то пошло не так, попробуйте ещё раз.", "Something went wrong, please try again."},

	"confirm_title": {"Напомнить: **%s**", "Remind you: **%s**"},
	"when_line":     {"Когда: %s (%s)", "When: %s (%s)"},
	"repeat_line":   {"Повтор: %s", "Repeats: %s"},
	"adjusted_note": {"Это время уже прошло, поэтому беру ближайшее следующее.", "That time has passed, so I took the next one."},
	"assisted_note": {"Время распознано с помощью ИИ, проверьте его.", "The time was read with AI help, please double-check it."},
	"confirm":       {"Подтвердить", "Confirm"},
	"cancel":        {"Отмена", "Cancel"},
	"created":       {"Готово! Напоминание #%d создано.", "Done! Reminder #%d created."},
	"cancelled":     {"Отменено.", "Cancelled."},
	"expired":       {"Запрос устарел, создайте напоминание заново.", "This request expired, please create the reminder again."},
	"not_yours":     {"Это не ваше напоминание.", "This is not your reminder."},

	"list_empty":  {"У вас нет активных напоминаний.", "You have no active reminders."},
	"list_header": {"Ваши напоминания:", "Your reminders:"},
	"paused_mark": {"(на паузе)", "(paused)"},
	"deleted":     {"Напоминание #%d удалено.", "Reminder #%d deleted."},
	"paused":      {"Напоминание #%d приостановлено.", "Reminder #%d paused."},
	"resumed":     {"Напоминание #%d возобновлено, следующее: %s.", "Reminder #%d resumed, next: %s."},
	"not_found":   {"Напоминание #%d не найдено.", "Reminder #%d not found."},

	"timezone_current": {"Ваш часовой пояс: %s (%s), сейчас %s.", "Your timezone: %s (%s), now %s."},
	"timezone_set":     {"Часовой пояс установлен: %s (%s).", "Timezone set to %s (%s)."},
	"language_set":     {"Язык: русский.", "Language: English."},
	"examples_header":  {"Примеры фраз со временем:", "Example time phrases:"},

	"notification": {"⏰ <@%s> Напоминание: %s", "⏰ <@%s> Reminder: %s"},
	"next_line":    {"Следующее: %s", "Next: %s"},
	"admin_only":   {"Только для администраторов.", "Admins only."},
	"stats": {
		"Таймеров: %d\nПользователей: %d\nКэш разбора: %d записей",
		"Timers: %d\nUsers: %d\nParse cache: %d entries",
	},
}

// T formats the reply key in l. Unknown keys come back verbatim.
func T(l lang.Language, key string, args ...any) string {
	pair, ok := texts[key]
	if !ok || !l.Valid() {
		return key
	}
	if len(args) == 0 {
		return pair[l]
	}
	return fmt.Sprintf(pair[l], args...)
}
