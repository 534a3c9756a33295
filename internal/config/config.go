// Package config is a package for configuring the bot.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"remindpro/internal/lang"
	"remindpro/internal/tzutil"
)

var Admins = []string{}

// maxCeilingDays keeps FutureCeiling well inside time.Duration.
const maxCeilingDays = 100 * 365

// Settings are read once at startup from the environment (and .env).
type Settings struct {
	DiscordToken        string
	DBPath              string
	DefaultTimezone     string
	DefaultLanguage     lang.Language
	MaxRemindersPerUser int
	FutureCeiling       time.Duration
	DefaultHour         int
	RecoverySchedule    string
	ParseCacheSize      int
	ParseCacheTTL       time.Duration

	AssistProvider string
	AssistTimeout  time.Duration
	GeminiToken    string
	GeminiModel    string
	OpenAIToken    string
	OpenAIBaseURL  string
	OpenAIModel    string
}

func Defaults() Settings {
	return Settings{
		DBPath:              "remindpro.db",
		DefaultTimezone:     tzutil.Default,
		DefaultLanguage:     lang.Russian,
		MaxRemindersPerUser: 50,
		FutureCeiling:       5 * 365 * 24 * time.Hour,
		DefaultHour:         9,
		RecoverySchedule:    "@every 5m",
		ParseCacheSize:      1000,
		ParseCacheTTL:       time.Hour,
		AssistTimeout:       10 * time.Second,
	}
}

// Load reads the settings. Values that do not parse keep their default and
// are logged.
func Load() Settings {
	s := Defaults()
	s.DiscordToken = os.Getenv("DISCORD_TOKEN")
	s.DBPath = str("DB_PATH", s.DBPath)

	if tz := os.Getenv("DEFAULT_TIMEZONE"); tz != "" {
		if err := tzutil.Validate(tz); err != nil {
			log.Printf("config: DEFAULT_TIMEZONE: %v", err)
		} else {
			s.DefaultTimezone = tz
		}
	}
	if code := os.Getenv("DEFAULT_LANGUAGE"); code != "" {
		l, err := lang.Parse(code)
		if err != nil {
			log.Printf("config: DEFAULT_LANGUAGE: %v", err)
		} else {
			s.DefaultLanguage = l
		}
	}

	s.MaxRemindersPerUser = positive("MAX_REMINDERS", s.MaxRemindersPerUser)
	if days := positive("FUTURE_CEILING_DAYS", 0); days > 0 && days <= maxCeilingDays {
		s.FutureCeiling = time.Duration(days) * 24 * time.Hour
	}
	if h := positive("DEFAULT_HOUR", s.DefaultHour); h <= 23 {
		s.DefaultHour = h
	}
	s.RecoverySchedule = str("RECOVERY_SCHEDULE", s.RecoverySchedule)
	s.ParseCacheSize = positive("PARSE_CACHE_SIZE", s.ParseCacheSize)
	s.ParseCacheTTL = duration("PARSE_CACHE_TTL", s.ParseCacheTTL)

	s.AssistProvider = os.Getenv("ASSIST_PROVIDER")
	s.AssistTimeout = duration("ASSIST_TIMEOUT", s.AssistTimeout)
	s.GeminiToken = os.Getenv("GEMINI_TOKEN")
	s.GeminiModel = os.Getenv("GEMINI_MODEL")
	s.OpenAIToken = os.Getenv("OPENAI_TOKEN")
	s.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	s.OpenAIModel = os.Getenv("OPENAI_MODEL")

	if admins := os.Getenv("ADMINS"); admins != "" {
		Admins = Admins[:0]
		for _, id := range strings.Split(admins, ",") {
			if id = strings.TrimSpace(id); id != "" {
				Admins = append(Admins, id)
			}
		}
	}
	return s
}

func str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func positive(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		log.Printf("config: %s: invalid value %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		log.Printf("config: %s: invalid value %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
