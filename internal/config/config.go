package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"boxing-platform"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5002"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres    Postgres
	Redis       Redis
	Fight       Fight
	Leaderboard Leaderboard
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds cache + pubsub configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Fight governs match resolution and the live feed.
type Fight struct {
	// RandomSource selects the draw provider: "randomorg" or "local".
	RandomSource     string        `env:"FIGHT_RANDOM_SOURCE" envDefault:"randomorg"`
	RandomOrgTimeout time.Duration `env:"FIGHT_RANDOM_ORG_TIMEOUT" envDefault:"5s"`
	FeedChannel      string        `env:"FIGHT_FEED_CHANNEL" envDefault:"fights:updates"`
}

// Leaderboard governs board caching.
type Leaderboard struct {
	CacheTTL time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"30s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Fight.RandomSource != "randomorg" && cfg.Fight.RandomSource != "local" {
		return nil, fmt.Errorf("FIGHT_RANDOM_SOURCE must be 'randomorg' or 'local', got %q", cfg.Fight.RandomSource)
	}
	return cfg, nil
}
