package handler

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/config"
	"remindpro/internal/discord"
	"remindpro/internal/lang"
	"remindpro/internal/reminder"
	"remindpro/internal/tzutil"
	"remindpro/internal/user"
	"remindpro/internal/utility"
)

// Commands is a map of command names and their corresponding functions.
var Commands = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
	"remind": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		opts := options(i)
		text := opts["text"].StringValue()
		var when string
		if o, ok := opts["when"]; ok {
			when = strings.TrimSpace(o.StringValue())
		}

		p, err := prepare(u, u.Language, text, when)
		if err != nil {
			phrase := when
			if phrase == "" {
				phrase = p.TimeText
			}
			reply(s, i, errorText(err, u.Language, phrase, u.Zone))
			return
		}

		token := stash(pendingReminder{
			Plan:      p,
			UserID:    u.ID,
			ChannelID: i.ChannelID,
			GuildID:   i.GuildID,
		})
		_, err = discord.SendFollowupComponents(s, i, describePlan(p, u.Language),
			discord.ConfirmButtons(token, T(u.Language, "confirm"), T(u.Language, "cancel")))
		if err != nil {
			log.Println(err)
		}
	},
	"reminders": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		list, err := reminder.List(u.ID)
		if err != nil {
			log.Printf("handler: list reminders for %s: %v", u.ID, err)
			reply(s, i, T(u.Language, "internal"))
			return
		}
		if len(list) == 0 {
			reply(s, i, T(u.Language, "list_empty"))
			return
		}
		lines := []string{T(u.Language, "list_header")}
		for _, r := range list {
			lines = append(lines, reminderLine(r, u.Language))
		}
		for _, part := range utility.SplitLines(strings.Join(lines, "\n"), 1900) {
			reply(s, i, part)
		}
	},
	"reminder_delete": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		id := options(i)["id"].IntValue()
		if err := reminder.Delete(u.ID, id); err != nil {
			reply(s, i, idError(err, u.Language, id))
			return
		}
		reply(s, i, T(u.Language, "deleted", id))
	},
	"reminder_pause": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		id := options(i)["id"].IntValue()
		if err := reminder.Pause(u.ID, id); err != nil {
			reply(s, i, idError(err, u.Language, id))
			return
		}
		reply(s, i, T(u.Language, "paused", id))
	},
	"reminder_resume": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		id := options(i)["id"].IntValue()
		r, err := reminder.Resume(u.ID, id)
		if err != nil {
			reply(s, i, idError(err, u.Language, id))
			return
		}
		reply(s, i, T(u.Language, "resumed", id, tzutil.FormatLocal(r.NextFire, u.Language)))
	},
	"timezone": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		o, set := options(i)["name"]
		if !set {
			local := time.Now().In(u.Location())
			reply(s, i, T(u.Language, "timezone_current", u.Zone, tzutil.FormatOffset(local), tzutil.FormatLocal(local, u.Language)))
			return
		}
		input := o.StringValue()
		zone, err := tzutil.Resolve(input)
		if err == nil {
			err = user.SetTimezone(u.ID, zone)
		}
		if err != nil {
			reply(s, i, errorText(err, u.Language, "", input))
			return
		}
		reply(s, i, T(u.Language, "timezone_set", zone, tzutil.FormatOffset(time.Now().In(tzutil.Load(zone)))))
	},
	"language": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		l, err := lang.Parse(options(i)["code"].StringValue())
		if err == nil {
			err = user.SetLanguage(u.ID, l)
		}
		if err != nil {
			log.Printf("handler: set language for %s: %v", u.ID, err)
			reply(s, i, T(u.Language, "internal"))
			return
		}
		reply(s, i, T(l, "language_set"))
	},
	"examples": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		reply(s, i, examplesText(u.Language))
	},
	"reminder_stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		u, ok := begin(s, i)
		if !ok {
			return
		}
		if !utility.IsAdmin(u.ID) {
			reply(s, i, T(u.Language, "admin_only"))
			return
		}
		users, err := user.Count()
		if err != nil {
			log.Printf("handler: count users: %v", err)
		}
		reply(s, i, T(u.Language, "stats", reminder.TotalActive(), users, plans.Parser().Cache().Len()))
	},
}

// Autocomplete serves option suggestions by command name.
var Autocomplete = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
	"timezone": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		var query string
		for _, o := range i.ApplicationCommandData().Options {
			if o.Focused {
				query = o.StringValue()
			}
		}
		discord.RespondChoices(s, i, config.TimezoneChoices(query))
	},
}

// begin logs the interaction, defers an ephemeral reply and loads the
// invoking user.
func begin(s *discordgo.Session, i *discordgo.InteractionCreate) (user.User, bool) {
	du := utility.InteractionUser(i)
	log.Printf("Received interaction: %s by %s", i.ApplicationCommandData().Name, du.Username)
	discord.DeferEphemeralResponse(s, i)

	u, err := user.Ensure(du.ID, string(i.Locale))
	if err != nil {
		log.Printf("handler: %v", err)
		reply(s, i, T(lang.ParseOr(string(i.Locale), user.DefaultLanguage), "internal"))
		return u, false
	}
	return u, true
}

func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := map[string]*discordgo.ApplicationCommandInteractionDataOption{}
	for _, o := range i.ApplicationCommandData().Options {
		opts[o.Name] = o
	}
	return opts
}

func reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := discord.SendFollowup(s, i, content); err != nil {
		log.Println(err)
	}
}

func idError(err error, l lang.Language, id int64) string {
	if errors.Is(err, reminder.ErrNotFound) {
		return T(l, "not_found", id)
	}
	log.Printf("handler: reminder %d: %v", id, err)
	return T(l, "internal")
}

func examplesText(l lang.Language) string {
	lines := []string{T(l, "examples_header")}
	for _, e := range lang.For(l).Examples {
		lines = append(lines, "• "+e)
	}
	return strings.Join(lines, "\n")
}
