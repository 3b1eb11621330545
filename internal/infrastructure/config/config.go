package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Queue    QueueConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_EXPIRATION,     default=15m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL,  default=720h"`
}

type PostgresConfig struct {
	URL          string        `env:"DATABASE_URL, default=postgres://localhost:5432/gym_app?sslmode=disable"`
	MaxConns     int32         `env:"DB_MAX_CONNS, default=8"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT, default=5s"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=10m"`
}

type QueueConfig struct {
	Workers int `env:"ACTIVITY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate enforces the settings the process cannot run without. It runs once
// at startup; a failure here means the server must not serve traffic.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.JWT.AccessTTL <= 0 {
		return errors.New("config: JWT_EXPIRATION must be positive")
	}
	if c.JWT.RefreshTTL <= 0 {
		return errors.New("config: REFRESH_TOKEN_TTL must be positive")
	}
	if c.Postgres.URL == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	return nil
}
