package utility

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"remindpro/internal/config"
)

func TestIsAdmin(t *testing.T) {
	saved := config.Admins
	config.Admins = []string{"102087943627243520", "123116664207179777"}
	defer func() { config.Admins = saved }()

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"first admin", "102087943627243520", true},
		{"second admin", "123116664207179777", true},
		{"not an admin", "9999999999999999999", false},
		{"empty id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAdmin(tt.id)
			if got != tt.want {
				t.Errorf("IsAdmin(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestInteractionUser(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "1"}},
	}}
	if got := InteractionUser(guild); got.ID != "1" {
		t.Errorf("guild user = %q, want 1", got.ID)
	}

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "2"}}}
	if got := InteractionUser(dm); got.ID != "2" {
		t.Errorf("dm user = %q, want 2", got.ID)
	}
}

func TestStripMention(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<@42> remind me tomorrow", "remind me tomorrow"},
		{"<@!42> напомни через час", "напомни через час"},
		{"hey <@42>", "hey"},
		{"<@7> untouched", "<@7> untouched"},
	}
	for _, tt := range tests {
		if got := StripMention(tt.in, "42"); got != tt.want {
			t.Errorf("StripMention(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMentions(t *testing.T) {
	m := &discordgo.Message{Mentions: []*discordgo.User{{ID: "1"}, {ID: "42"}}}
	if !Mentions(m, "42") {
		t.Error("expected mention of 42")
	}
	if Mentions(m, "7") {
		t.Error("unexpected mention of 7")
	}
}

func TestSplitLines(t *testing.T) {
	if got := SplitLines("short", 100); len(got) != 1 || got[0] != "short" {
		t.Errorf("SplitLines short = %q", got)
	}

	text := strings.Repeat("line of text\n", 20)
	parts := SplitLines(strings.TrimSuffix(text, "\n"), 50)
	for _, p := range parts {
		if len(p) > 50 {
			t.Errorf("part longer than limit: %d", len(p))
		}
	}
	if joined := strings.Join(parts, "\n"); joined != strings.TrimSuffix(text, "\n") {
		t.Errorf("lines lost while splitting")
	}

	// Cuts never split a multi-byte rune.
	for _, p := range SplitLines(strings.Repeat("я", 30), 7) {
		if !strings.HasPrefix(p, "я") || len(p)%2 != 0 {
			t.Errorf("bad cut %q", p)
		}
	}
}

func TestIsImageURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://cdn.discordapp.com/attachments/1/2/photo.PNG?ex=1", true},
		{"https://example.com/a.webp", true},
		{"https://example.com/a.mp4", false},
		{"https://example.com/noext", false},
		{"://bad url", false},
	}
	for _, tt := range tests {
		if got := IsImageURL(tt.url); got != tt.want {
			t.Errorf("IsImageURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestDownloadBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("hello content"))
		case "/big":
			w.WriteHeader(http.StatusOK)
			w.Write(make([]byte, MaxDownload+10))
		case "/notfound":
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Run("successful download", func(t *testing.T) {
		data, err := DownloadBytes(server.URL + "/ok")
		if err != nil {
			t.Fatalf("DownloadBytes() unexpected error: %v", err)
		}
		if string(data) != "hello content" {
			t.Errorf("DownloadBytes() = %q, want %q", string(data), "hello content")
		}
	})

	t.Run("non-200 status returns error", func(t *testing.T) {
		if _, err := DownloadBytes(server.URL + "/notfound"); err == nil {
			t.Error("DownloadBytes() expected error for 404 status, got nil")
		}
	})

	t.Run("oversized body returns error", func(t *testing.T) {
		if _, err := DownloadBytes(server.URL + "/big"); err == nil {
			t.Error("DownloadBytes() expected error for oversized body, got nil")
		}
	})
}
