package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Remote RemoteConfig
	Store  StoreConfig
	Redis  RedisConfig
}

type RemoteConfig struct {
	// BaseURL of the attendance persistence service.
	BaseURL string `env:"REMOTE_BASE_URL, default=http://localhost:8000"`
	// TimeoutSeconds bounds each remote call; 0 keeps the client default.
	TimeoutSeconds int `env:"REMOTE_TIMEOUT_SECONDS, default=30"`
}

type StoreConfig struct {
	// Path of the sqlite file holding the persisted session.
	Path string `env:"SESSION_DB_PATH, default=attendance.db"`
}

type RedisConfig struct {
	// Addr enables the directory cache when non-empty.
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from the environment using go-envconfig. A .env
// file in the working directory is applied first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
