package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token            string        `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID            string        `env:"DISCORD_APP_ID"`
	GuildIDs         []string      `env:"DISCORD_GUILD_IDS" envSeparator:","`
	DbPath           string        `env:"FATECORD_DB" envDefault:"./fatecord.db"`
	DraftTTL         time.Duration `env:"BALLOT_DRAFT_TTL" envDefault:"15m"`
	PresenceSchedule string        `env:"PRESENCE_SCHEDULE" envDefault:"@every 5m"`
}

// LoadConfig reads a .env file when one exists, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("failed to load .env file")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from env: %w", err)
	}
	return cfg, nil
}
