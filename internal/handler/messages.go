package handler

import (
	"encoding/base64"
	"log"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/discord"
	"remindpro/internal/reminder"
	"remindpro/internal/user"
	"remindpro/internal/utility"
)

const maxImages = 4

// HandleMessage turns "@bot remind me …" (or a trigger phrase in a DM) into
// a reminder awaiting confirmation.
func HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	if m.GuildID != "" && !utility.Mentions(m.Message, s.State.User.ID) {
		return
	}

	content := utility.StripMention(m.Content, s.State.User.ID)
	n, parseLang, ok := reminder.Trigger(content)
	if !ok {
		return
	}

	u, err := user.Ensure(m.Author.ID, parseLang.Code())
	if err != nil {
		log.Printf("handler: %v", err)
		return
	}

	p, err := prepare(u, parseLang, content[n:], "")
	if err != nil {
		if _, err := discord.SendMessage(s, m.Message, errorText(err, u.Language, p.TimeText, u.Zone)); err != nil {
			log.Println(err)
		}
		return
	}

	token := stash(pendingReminder{
		Plan:      p,
		UserID:    u.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Images:    attachedImages(m.Message),
	})
	_, err = discord.SendMessageComponents(s, m.Message, describePlan(p, u.Language),
		discord.ConfirmButtons(token, T(u.Language, "confirm"), T(u.Language, "cancel")))
	if err != nil {
		discord.LogSendErrorMessage(s, m.Message, err.Error())
	}
}

// attachedImages downloads the message's image attachments for delivery
// with the reminder.
func attachedImages(m *discordgo.Message) []reminder.Image {
	var images []reminder.Image
	for _, a := range m.Attachments {
		if len(images) == maxImages {
			break
		}
		if !utility.IsImageURL(a.URL) {
			continue
		}
		data, err := utility.DownloadBytes(a.URL)
		if err != nil {
			log.Printf("handler: download %q: %v", a.Filename, err)
			continue
		}
		images = append(images, reminder.Image{
			Filename: a.Filename,
			Data:     base64.StdEncoding.EncodeToString(data),
		})
	}
	return images
}
