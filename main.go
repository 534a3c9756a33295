// Package main is the entry point for the application.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	_ "time/tzdata"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"remindpro/internal/assist"
	"remindpro/internal/config"
	"remindpro/internal/db"
	"remindpro/internal/handler"
	"remindpro/internal/planner"
	"remindpro/internal/reminder"
	"remindpro/internal/timeparse"
	"remindpro/internal/user"
)

var settings config.Settings

func init() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}
	settings = config.Load()

	db.Open(settings.DBPath)

	user.Init(db.DB)
	user.DefaultLanguage = settings.DefaultLanguage
	user.DefaultZone = settings.DefaultTimezone
	reminder.MaxPerUser = settings.MaxRemindersPerUser
}

func main() {
	if settings.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}

	rw, err := assist.New(context.Background(), assist.Config{
		Provider:      settings.AssistProvider,
		GeminiToken:   settings.GeminiToken,
		GeminiModel:   settings.GeminiModel,
		OpenAIToken:   settings.OpenAIToken,
		OpenAIBaseURL: settings.OpenAIBaseURL,
		OpenAIModel:   settings.OpenAIModel,
		Timeout:       settings.AssistTimeout,
	})
	switch {
	case errors.Is(err, assist.ErrDisabled):
		log.Print("AI time assist disabled")
	case err != nil:
		log.Printf("AI time assist unavailable: %v", err)
	}

	parser := timeparse.New(timeparse.Options{
		Cache:       timeparse.NewLRUCache(settings.ParseCacheSize, settings.ParseCacheTTL),
		Ceiling:     settings.FutureCeiling,
		DefaultHour: settings.DefaultHour,
	})
	handler.Init(planner.New(parser, rw))
	log.Printf("Parse strategies: %s", strings.Join(parser.Strategies(), ", "))

	dg, err := discordgo.New("Bot " + settings.DiscordToken)
	if err != nil {
		log.Fatal("error creating Discord session,", err)
		return
	}

	dg.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages | discordgo.IntentMessageContent
	dg.ShouldReconnectOnError = true
	dg.ShouldRetryOnRateLimit = true

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := handler.Commands[i.ApplicationCommandData().Name]; ok {
				go h(s, i)
			}
		case discordgo.InteractionApplicationCommandAutocomplete:
			if h, ok := handler.Autocomplete[i.ApplicationCommandData().Name]; ok {
				go h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			split := strings.Split(i.MessageComponentData().CustomID, "-")
			if h, ok := handler.Components[split[0]]; ok {
				go h(s, i)
			}
		}
	})

	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		go handler.HandleMessage(s, m)
	})

	dg.AddHandler(func(s *discordgo.Session, _ *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		log.Printf("Scheduled reminders: %d", reminder.TotalActive())
		if n, err := user.Count(); err == nil {
			log.Printf("Registered users: %d", n)
		}
	})

	err = dg.Open()
	if err != nil {
		log.Fatal("error opening connection,", err)
		return
	}

	reminder.Init(db.DB, handler.Notifier(dg))
	if err := reminder.StartRecovery(settings.RecoverySchedule); err != nil {
		log.Printf("recovery sweep disabled: %v", err)
	}
	reminder.Sweep()

	_, err = dg.ApplicationCommandBulkOverwrite(dg.State.User.ID, "", config.Commands)
	if err != nil {
		log.Printf("could not register commands: %v", err)
	}
	for _, guild := range dg.State.Guilds {
		commands, err := dg.ApplicationCommands(dg.State.User.ID, guild.ID)
		if err != nil {
			log.Printf("could not get commands for guild %s: %v", guild.ID, err)
			continue
		}
		for _, command := range commands {
			if _, ok := handler.Commands[command.Name]; !ok {
				err := dg.ApplicationCommandDelete(dg.State.User.ID, guild.ID, command.ID)
				if err != nil {
					log.Printf("could not delete '%s' command: %v", command.Name, err)
				}
			}
		}
	}
	log.Printf("Loaded %d commands", len(config.Commands))

	log.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	defer db.Close()
	defer dg.Close()
	defer reminder.Stop()
	defer reminder.StopRecovery()
	defer log.Print("Bot is shutting down.")
}
