// Package config reads server and shell settings from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	StartWordsFile string `env:"WORDS_START_FILE"`
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`
	Locale         string `env:"DICTIONARY_LOCALE" envDefault:"en"`
	FallbackRoot   string `env:"FALLBACK_ROOT" envDefault:"silkworm"`

	// AllowFixedRoot lets /game/new callers pick their own root.
	AllowFixedRoot bool `env:"ALLOW_FIXED_ROOT" envDefault:"false"`

	// ResetRedrawsRoot makes /game/reset pick a new root unless the request says otherwise.
	ResetRedrawsRoot bool   `env:"RESET_REDRAWS_ROOT" envDefault:"false"`
	DailySalt        string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the current environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("parse env: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return c, nil
}
