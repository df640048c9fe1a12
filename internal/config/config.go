// Package config loads Remoji's runtime configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is the process configuration.
type Config struct {
	Env string `env:"REMOJI_ENV" envDefault:"production"`

	DiscordToken   string `env:"DISCORD_TOKEN,required"`
	ApplicationID  string `env:"DISCORD_APPLICATION_ID,required"`
	TestingGuildID string `env:"TESTING_GUILD_ID"`
	DeveloperIDs   string `env:"DEVELOPER_IDS"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	TopGGToken   string `env:"TOPGG_TOKEN"`
	TopGGVoteURL string `env:"TOPGG_VOTE_URL" envDefault:"https://top.gg/bot/remoji/vote"`

	SupportInvite string `env:"SUPPORT_INVITE" envDefault:"https://discord.gg/remoji"`

	APIHost    string        `env:"API_HOST" envDefault:"0.0.0.0"`
	APIPort    int           `env:"API_PORT" envDefault:"3000"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// Product-tunable gating constants.
	VoteCacheTTL time.Duration `env:"VOTE_CACHE_TTL" envDefault:"1h"`
	CopyCooldown time.Duration `env:"COPY_COOLDOWN" envDefault:"15s"`
}

// New loads .env (if present) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Development reports whether the process runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// IsDeveloper reports whether userID is in the configured developer list.
func (c *Config) IsDeveloper(userID string) bool {
	if c.DeveloperIDs == "" {
		return false
	}
	for _, id := range strings.Split(c.DeveloperIDs, ",") {
		if strings.TrimSpace(id) == userID {
			return true
		}
	}
	return false
}
