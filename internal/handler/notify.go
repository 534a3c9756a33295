package handler

import (
	"bytes"
	"encoding/base64"
	"log"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/discord"
	"remindpro/internal/lang"
	"remindpro/internal/reminder"
	"remindpro/internal/tzutil"
	"remindpro/internal/user"
)

// Notifier delivers due reminders through s.
func Notifier(s *discordgo.Session) reminder.Notifier {
	return func(r reminder.Reminder) error {
		l := user.DefaultLanguage
		if u, err := user.Get(r.UserID); err == nil {
			l = u.Language
		}
		_, err := discord.SendChannelFiles(s, r.ChannelID, notificationText(r, l), imageFiles(r.Images))
		return err
	}
}

// notificationText is the delivered message. Repeating reminders mention
// the next occurrence, which the scheduler has already stored.
func notificationText(r reminder.Reminder, l lang.Language) string {
	msg := T(l, "notification", r.UserID, r.Text)
	if r.Repeat.Repeats() {
		current, err := reminder.Get(r.UserID, r.ID)
		if err == nil && current.Active && current.NextFire.After(r.NextFire) {
			msg += "\n" + T(l, "next_line", tzutil.FormatLocal(current.NextFire, l))
		}
	}
	return msg
}

func imageFiles(images []reminder.Image) []*discordgo.File {
	files := make([]*discordgo.File, 0, len(images))
	for _, img := range images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			log.Printf("reminder: decode image %q: %v", img.Filename, err)
			continue
		}
		files = append(files, &discordgo.File{
			Name:   img.Filename,
			Reader: bytes.NewReader(data),
		})
	}
	return files
}
