// Package discord is a utility package for interacting with Discord.
package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// LogSendErrorMessage logs an error message and sends it to a Discord channel.
func LogSendErrorMessage(s *discordgo.Session, m *discordgo.Message, content string) {
	log.Println(content)
	_, _ = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   content,
		Reference: m.Reference(),
	})
}

// UpdateResponse replaces the message a component belongs to, dropping its
// buttons.
func UpdateResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
}

// SendFollowup sends a follow-up message to a Discord interaction.
func SendFollowup(s *discordgo.Session, i *discordgo.InteractionCreate, content string) (*discordgo.Message, error) {
	return s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
}

// SendFollowupComponents sends a follow-up message with buttons.
func SendFollowupComponents(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	return s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content:    content,
		Components: components,
	})
}

// SendMessage replies to a message in its channel.
func SendMessage(s *discordgo.Session, m *discordgo.Message, content string) (*discordgo.Message, error) {
	return s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   content,
		Reference: m.Reference(),
	})
}

// SendMessageComponents replies to a message with buttons.
func SendMessageComponents(s *discordgo.Session, m *discordgo.Message, content string, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	return s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    content,
		Reference:  m.Reference(),
		Components: components,
	})
}

// SendChannelFiles posts content with files to a channel.
func SendChannelFiles(s *discordgo.Session, channelID, content string, files []*discordgo.File) (*discordgo.Message, error) {
	return s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Files:   files,
	})
}

// ConfirmButtons builds a confirm/cancel row. The custom IDs follow the
// "<handler>-<token>" convention the dispatcher splits on.
func ConfirmButtons(token, confirm, cancel string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: confirm, Style: discordgo.SuccessButton, CustomID: "confirm-" + token},
				discordgo.Button{Label: cancel, Style: discordgo.SecondaryButton, CustomID: "cancel-" + token},
			},
		},
	}
}

// RespondChoices answers an autocomplete interaction.
func RespondChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Println(err)
	}
}

// DeferEphemeralResponse defers an ephemeral response to a Discord interaction.
func DeferEphemeralResponse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Println(err)
	}
}
