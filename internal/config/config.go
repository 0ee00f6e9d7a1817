// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/tavernkeep/companion-api/internal/errors"
)

// Config holds every tunable of the server process
type Config struct {
	// ListenAddr is the address the websocket gateway binds
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// RedisAddr is the host:port of the redis instance backing storage
	// and the battle broadcast
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisUseTLS enables TLS to redis, needed on most hosted tiers
	RedisUseTLS bool `env:"REDIS_USE_TLS" envDefault:"false"`

	// BattleChannel is the pub/sub topic battles broadcast on
	BattleChannel string `env:"BATTLE_CHANNEL" envDefault:"battle-channel-room"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`
}

// Load reads the configuration from the environment. A missing .env file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ListenAddr", c.ListenAddr, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRequired("BattleChannel", c.BattleChannel, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	if c.ShutdownTimeoutSeconds <= 0 {
		vb.Field("ShutdownTimeoutSeconds", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps the configured level onto slog's scale
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
