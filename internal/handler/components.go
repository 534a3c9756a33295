// Package handler contains all handlers for commands, components and messages.
package handler

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/discord"
	"remindpro/internal/lang"
	"remindpro/internal/user"
	"remindpro/internal/utility"
)

var Components = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
	"confirm": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		du := utility.InteractionUser(i)
		log.Printf("Received interaction: %s by %s", i.MessageComponentData().CustomID, du.Username)
		l := userLanguage(du.ID, string(i.Locale))

		token := tokenOf(i)
		p, ok := pending.Peek(token)
		if !ok {
			update(s, i, T(l, "expired"))
			return
		}
		if p.UserID != du.ID {
			ephemeral(s, i, T(l, "not_yours"))
			return
		}
		if _, ok := take(token); !ok {
			update(s, i, T(l, "expired"))
			return
		}

		r, err := commit(p)
		if err != nil {
			log.Printf("handler: store reminder for %s: %v", du.ID, err)
			update(s, i, errorText(err, l, p.Plan.TimeText, p.Plan.Zone))
			return
		}
		update(s, i, T(l, "created", r.ID)+"\n"+describePlan(p.Plan, l))
	},
	"cancel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		du := utility.InteractionUser(i)
		log.Printf("Received interaction: %s by %s", i.MessageComponentData().CustomID, du.Username)
		l := userLanguage(du.ID, string(i.Locale))

		token := tokenOf(i)
		if p, ok := pending.Peek(token); ok && p.UserID != du.ID {
			ephemeral(s, i, T(l, "not_yours"))
			return
		}
		take(token)
		update(s, i, T(l, "cancelled"))
	},
}

func tokenOf(i *discordgo.InteractionCreate) string {
	_, token, _ := strings.Cut(i.MessageComponentData().CustomID, "-")
	return token
}

func userLanguage(id, locale string) lang.Language {
	if u, err := user.Get(id); err == nil {
		return u.Language
	}
	return lang.ParseOr(locale, user.DefaultLanguage)
}

func update(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := discord.UpdateResponse(s, i, content); err != nil {
		log.Println(err)
	}
}

func ephemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Println(err)
	}
}
