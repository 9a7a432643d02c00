// apps/go-server/internal/config/config.go
//
// Server configuration.
// A .env file (if present) is loaded first, then the environment is parsed
// into Config. Every field has a development default.
//
// Environment variables:
//   PORT, LOG_LEVEL, APP_ENV, CLIENT_ORIGIN
//   SESSION_SECRET, SESSION_TTL, SESSION_SWEEP
//   DICTIONARY_DSN, DICTIONARY_URL, DICTIONARY_FILE
//   CONTENT_FILE, DAILY_SALT, MIN_WORD_LENGTH

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionSweep  time.Duration `env:"SESSION_SWEEP" envDefault:"10m"`

	DictionaryDSN  string `env:"DICTIONARY_DSN"`
	DictionaryURL  string `env:"DICTIONARY_URL"`
	DictionaryFile string `env:"DICTIONARY_FILE"`

	ContentFile   string `env:"CONTENT_FILE"`
	DailySalt     string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	MinWordLength int    `env:"MIN_WORD_LENGTH" envDefault:"3"`
}

// Production reports whether APP_ENV is "production".
func (c Config) Production() bool { return c.AppEnv == "production" }

// Load reads .env files (missing files are ignored) and parses the environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.MinWordLength < 1 {
		return errors.New("config: MIN_WORD_LENGTH must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	if c.Production() && c.SessionSecret == "dev_secret_change_me" {
		return errors.New("config: SESSION_SECRET must be set in production")
	}
	return nil
}
