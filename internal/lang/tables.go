package lang

import "time"

var tables = [numLanguages]Table{
	Russian: {
		DayFirst: true,

		Today:            []string{"сегодня"},
		Tomorrow:         []string{"завтра"},
		DayAfterTomorrow: []string{"послезавтра"},

		Months: map[string]time.Month{
			"январь": time.January, "января": time.January, "январю": time.January, "янв": time.January,
			"февраль": time.February, "февраля": time.February, "февралю": time.February, "фев": time.February,
			"март": time.March, "марта": time.March, "марту": time.March, "мар": time.March,
			"апрель": time.April, "апреля": time.April, "апрелю": time.April, "апр": time.April,
			"май": time.May, "мая": time.May, "маю": time.May,
			"июнь": time.June, "июня": time.June, "июню": time.June, "июн": time.June,
			"июль": time.July, "июля": time.July, "июлю": time.July, "июл": time.July,
			"август": time.August, "августа": time.August, "августу": time.August, "авг": time.August,
			"сентябрь": time.September, "сентября": time.September, "сентябрю": time.September, "сен": time.September,
			"октябрь": time.October, "октября": time.October, "октябрю": time.October, "окт": time.October,
			"ноябрь": time.November, "ноября": time.November, "ноябрю": time.November, "ноя": time.November,
			"декабрь": time.December, "декабря": time.December, "декабрю": time.December, "дек": time.December,
		},
		Weekdays: map[string]int{
			"понедельник": 0,
			"вторник":     1,
			"среда":       2, "среду": 2,
			"четверг": 3,
			"пятница": 4, "пятницу": 4,
			"суббота": 5, "субботу": 5,
			"воскресенье": 6,
		},
		WeekdayAbbrevs: map[string]int{
			"пн": 0, "вт": 1, "ср": 2, "чт": 3, "пт": 4, "сб": 5, "вс": 6,
		},
		WeekdayPlurals: map[string]int{
			"понедельникам": 0,
			"вторникам":     1,
			"средам":        2,
			"четвергам":     3,
			"пятницам":      4,
			"субботам":      5,
			"воскресеньям":  6,
		},
		WeekdayGroups: map[string][]int{
			"будням":   {0, 1, 2, 3, 4},
			"будни":    {0, 1, 2, 3, 4},
			"выходным": {5, 6},
			"выходные": {5, 6},
		},

		Qualifiers: map[string]Qualifier{
			"утра":   Morning,
			"дня":    Afternoon,
			"вечера": Evening,
			"ночи":   Night,
		},
		DayParts: map[string]int{
			"утром":   9,
			"днем":    14,
			"вечером": 19,
			"ночью":   23,
		},

		Units: map[string]Unit{
			"минуту": Minute, "минуты": Minute, "минут": Minute, "мин": Minute,
			"час": Hour, "часа": Hour, "часов": Hour, "ч": Hour,
			"день": Day, "дня": Day, "дней": Day,
			"неделю": Week, "недели": Week, "недель": Week,
		},
		UnitPhrases: map[string]Offset{
			"минуту":  {1, Minute},
			"полчаса": {30, Minute},
			"час":     {1, Hour},
			"неделю":  {1, Week},
		},

		RelativePrepositions: []string{"через"},
		TimePrepositions:     []string{"в", "во"},
		WeekdayPrepositions:  []string{"в", "во"},
		NextWords:            []string{"следующий", "следующую", "следующее", "следующая"},
		Conjunctions:         []string{"и"},
		Fillers:              []string{"в", "во", "на", "с", "у", "о", "об", "про"},

		RepeatDaily:        []string{"каждый день", "ежедневно", "каждодневно"},
		RepeatOtherDay:     []string{"через день", "каждый второй день"},
		RepeatWeekly:       []string{"каждую неделю", "еженедельно"},
		RepeatEveryPrefix:  []string{"каждый", "каждую", "каждое", "каждая"},
		RepeatPluralPrefix: []string{"по"},
		RepeatEveryN:       []string{"каждые"},

		MonthNames: [12]string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		WeekdayNames: [7]string{
			"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье",
		},
		Examples: []string{
			"Завтра 10:30",
			"Сегодня в 18:00",
			"Послезавтра в 15:45",
			"Через 2 часа",
			"Через 30 минут",
			"Понедельник в 9 утра",
			"31.12.2024 23:59",
			"15 января в 14:00",
			"20:00",
			"8 утра",
			"в 8 вечера",
			"Каждый день в 8 утра",
			"По понедельникам в 10:00",
		},
	},
	English: {
		DayFirst: false,

		Today:            []string{"today"},
		Tomorrow:         []string{"tomorrow", "tmrw"},
		DayAfterTomorrow: []string{"the day after tomorrow", "day after tomorrow"},

		Months: map[string]time.Month{
			"january": time.January, "jan": time.January,
			"february": time.February, "feb": time.February,
			"march": time.March, "mar": time.March,
			"april": time.April, "apr": time.April,
			"may":  time.May,
			"june": time.June, "jun": time.June,
			"july": time.July, "jul": time.July,
			"august": time.August, "aug": time.August,
			"september": time.September, "sep": time.September, "sept": time.September,
			"october": time.October, "oct": time.October,
			"november": time.November, "nov": time.November,
			"december": time.December, "dec": time.December,
		},
		Weekdays: map[string]int{
			"monday":    0,
			"tuesday":   1,
			"wednesday": 2,
			"thursday":  3,
			"friday":    4,
			"saturday":  5,
			"sunday":    6,
		},
		WeekdayAbbrevs: map[string]int{
			"mon": 0, "tue": 1, "tues": 1, "wed": 2, "thu": 3, "thur": 3, "thurs": 3,
			"fri": 4, "sat": 5, "sun": 6,
		},
		WeekdayPlurals: map[string]int{
			"mondays":    0,
			"tuesdays":   1,
			"wednesdays": 2,
			"thursdays":  3,
			"fridays":    4,
			"saturdays":  5,
			"sundays":    6,
		},
		WeekdayGroups: map[string][]int{
			"weekdays": {0, 1, 2, 3, 4},
			"weekday":  {0, 1, 2, 3, 4},
			"weekends": {5, 6},
			"weekend":  {5, 6},
		},

		Qualifiers: map[string]Qualifier{
			"am": AM,
			"pm": PM,
		},
		DayParts: map[string]int{
			"morning":   9,
			"afternoon": 14,
			"evening":   19,
			"night":     21,
		},

		Units: map[string]Unit{
			"minute": Minute, "minutes": Minute, "min": Minute, "mins": Minute,
			"hour": Hour, "hours": Hour, "hr": Hour, "hrs": Hour, "h": Hour,
			"day": Day, "days": Day,
			"week": Week, "weeks": Week,
		},
		UnitPhrases: map[string]Offset{
			"a minute":       {1, Minute},
			"half an hour":   {30, Minute},
			"an hour":        {1, Hour},
			"a day":          {1, Day},
			"a week":         {1, Week},
			"a couple hours": {2, Hour},
		},

		RelativePrepositions: []string{"in"},
		TimePrepositions:     []string{"at"},
		WeekdayPrepositions:  []string{"on"},
		NextWords:            []string{"next"},
		Conjunctions:         []string{"and"},
		Fillers:              []string{"at", "on", "in", "for", "by"},

		RepeatDaily:        []string{"every day", "each day", "daily", "everyday"},
		RepeatOtherDay:     []string{"every other day", "every second day"},
		RepeatWeekly:       []string{"every week", "each week", "weekly"},
		RepeatEveryPrefix:  []string{"every", "each"},
		RepeatPluralPrefix: []string{"on"},
		RepeatEveryN:       []string{"every"},

		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekdayNames: [7]string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
		Examples: []string{
			"Tomorrow 10:30 AM",
			"Today at 6:00 PM",
			"Day after tomorrow at 3:45 PM",
			"In 2 hours",
			"In 30 minutes",
			"Monday at 9 AM",
			"12/31/2024 11:59 PM",
			"January 15 at 2:00 PM",
			"8:00 PM",
			"at 8 AM",
			"Every day at 8 AM",
			"Every Monday at 10:00",
		},
	},
}
