package config

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/tzutil"
)

var (
	writePermission int64   = discordgo.PermissionSendMessages
	dmPermission            = true
	idMin           float64 = 1

	LanguageChoices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Русский", Value: "ru"},
		{Name: "English", Value: "en"},
	}

	// Commands are the commands that the bot will respond to.
	Commands = []*discordgo.ApplicationCommand{
		{
			Name:                     "remind",
			Description:              "Create a reminder",
			DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: "Создать напоминание"},
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "What to remind about, optionally with the time: \"call mom tomorrow at 10\"",
					Required:    true,
					MaxLength:   1000,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "when",
					Description: "When to remind: \"через 2 часа\", \"every Monday at 9 AM\"",
					Required:    false,
				},
			},
		},
		{
			Name:                     "reminders",
			Description:              "List your active reminders",
			DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: "Список активных напоминаний"},
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
		},
		reminderIDCommand("reminder_delete", "Delete a reminder", "Удалить напоминание"),
		reminderIDCommand("reminder_pause", "Pause a reminder", "Приостановить напоминание"),
		reminderIDCommand("reminder_resume", "Resume a paused reminder", "Возобновить напоминание"),
		{
			Name:                     "timezone",
			Description:              "Show or set your timezone",
			DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: "Показать или изменить часовой пояс"},
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "name",
					Description:  "IANA zone (Europe/Moscow), abbreviation (EST) or offset (UTC+3)",
					Required:     false,
					Autocomplete: true,
				},
			},
		},
		{
			Name:                     "language",
			Description:              "Set your language",
			DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: "Выбрать язык"},
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Language",
					Required:    true,
					Choices:     LanguageChoices,
				},
			},
		},
		{
			Name:                     "examples",
			Description:              "Show example time phrases",
			DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: "Примеры фраз со временем"},
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
		},
		{
			Name:                     "reminder_stats",
			Description:              "Scheduler statistics (admins only)",
			DefaultMemberPermissions: &writePermission,
			DMPermission:             &dmPermission,
		},
	}
)

func reminderIDCommand(name, description, ru string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     name,
		Description:              description,
		DescriptionLocalizations: &map[discordgo.Locale]string{discordgo.Russian: ru},
		DefaultMemberPermissions: &writePermission,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Reminder ID from /reminders",
				Required:    true,
				MinValue:    &idMin,
			},
		},
	}
}

// TimezoneChoices returns up to 25 popular zones containing query.
func TimezoneChoices(query string) []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, name := range tzutil.Popular {
		if query != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) == 25 {
			break
		}
	}
	return choices
}
