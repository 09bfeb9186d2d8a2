package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ActionPrefix - message prefix for action commands
const ActionPrefix = "owo"

// ServerName applied to the guild during provisioning
const ServerName = "⚔️ Legion of Fools ⚔️"

// PacingDelay between provisioning API calls
const PacingDelay = 100 * time.Millisecond

// RoleDeleteDelay between role deletions, role calls rate-limit harder
const RoleDeleteDelay = 150 * time.Millisecond

// Pending store backends
const (
	PendingStoreMemory = "memory"
	PendingStoreBolt   = "bolt"
)

// Settings - process configuration, read once at startup
type Settings struct {
	Token         string
	OwnerID       string
	AllowedGuilds []string
	DatabasePath  string
	GifPath       string
	PendingStore  string
}

// Load reads settings from the environment, with .env as a fallback source.
func Load() (Settings, error) {
	godotenv.Load()

	s := Settings{
		Token:        os.Getenv("DISCORD_TOKEN"),
		OwnerID:      os.Getenv("OWNER_ID"),
		DatabasePath: envOr("DATABASE_PATH", "data/data.db"),
		GifPath:      envOr("GIF_PATH", "assets/gifs"),
		PendingStore: envOr("PENDING_STORE", PendingStoreMemory),
	}
	if raw := os.Getenv("ALLOWED_GUILDS"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				s.AllowedGuilds = append(s.AllowedGuilds, id)
			}
		}
	}

	if s.Token == "" {
		return s, fmt.Errorf("DISCORD_TOKEN is not set")
	}
	if s.PendingStore != PendingStoreMemory && s.PendingStore != PendingStoreBolt {
		return s, fmt.Errorf("PENDING_STORE must be %q or %q", PendingStoreMemory, PendingStoreBolt)
	}
	return s, nil
}

// GuildAllowed - check a guild against the allow-list, empty list allows all
func (s Settings) GuildAllowed(id string) bool {
	if len(s.AllowedGuilds) == 0 {
		return true
	}
	for _, g := range s.AllowedGuilds {
		if g == id {
			return true
		}
	}
	return false
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
