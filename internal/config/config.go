// Package config loads the bot configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultTournamentURL is the postings page /pairings reads until /setpairings changes it
const DefaultTournamentURL = "https://www.tabroom.com/index/tourn/postings/round.mhtml?tourn_id=13417&round_id=450085"

// Config holds the bot configuration
type Config struct {
	DiscordToken     string `envconfig:"DISCORD_TOKEN" required:"true"`
	ApplicationID    string `envconfig:"APPLICATION_ID"`
	GuildID          string `envconfig:"GUILD_ID"`
	DiscordPublicKey string `envconfig:"DISCORD_PUBLIC_KEY"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	SchoolCode    string `envconfig:"SCHOOL_CODE"`
	TournamentURL string `envconfig:"TOURNAMENT_URL"`
	TabroomURL    string `envconfig:"TABROOM_URL" default:"https://www.tabroom.com/"`
	WikiURL       string `envconfig:"WIKI_URL" default:"https://hsld.debatecoaches.org/"`

	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":3000"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	PageCacheTTL time.Duration `envconfig:"PAGE_CACHE_TTL" default:"30s"`

	TimerInterval time.Duration `envconfig:"TIMER_INTERVAL" default:"2s"`
	TimerMax      time.Duration `envconfig:"TIMER_MAX" default:"3h"`

	ArgumentTypes []string `envconfig:"ARGUMENT_TYPES" default:"theory,larp,phil,tricks,ks,misc"`
}

// Load reads .env when present and then the environment. Variables already set
// in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.TournamentURL == "" {
		cfg.TournamentURL = DefaultTournamentURL
	}

	return cfg, nil
}
