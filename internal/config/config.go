// internal/config/config.go
//
// Runtime configuration for the cheez binaries.
//
// Precedence (lowest first):
//  1. built-in defaults
//  2. optional TOML file (--config)
//  3. environment variables, including a `.env` file loaded via godotenv
//
// Environment variables:
//
//	PORT, LOG_LEVEL, DB_PATH, CHEEZ_TARGET, MAX_ATTEMPTS,
//	CLIENT_ORIGIN, STATIC_DIR, PENALTY_MS, CHEEZ_REMOTE

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/cheez/internal/words"
)

// MaxAttemptsLimit bounds MaxAttempts.
const MaxAttemptsLimit = 12

// Config holds every tunable.
type Config struct {
	Port         string        `toml:"port"`
	LogLevel     string        `toml:"log_level"`
	DBPath       string        `toml:"db_path"` // empty: in-memory ledger
	Target       string        `toml:"target"`
	MaxAttempts  int           `toml:"max_attempts"`
	ClientOrigin string        `toml:"client_origin"`
	StaticDir    string        `toml:"static_dir"`
	Penalty      time.Duration `toml:"-"`
	PenaltyMS    int           `toml:"penalty_ms"`
	Remote       string        `toml:"remote"` // verdict service base URL for `play`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:         "5175",
		LogLevel:     "info",
		Target:       "CHEEZ",
		MaxAttempts:  5,
		ClientOrigin: "http://localhost:5173",
		PenaltyMS:    1200,
	}
}

// Load builds a Config from defaults, the TOML file at path (if non-empty)
// and the environment.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = n
		return nil
	}

	str("PORT", &cfg.Port)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("DB_PATH", &cfg.DBPath)
	str("CHEEZ_TARGET", &cfg.Target)
	str("CLIENT_ORIGIN", &cfg.ClientOrigin)
	str("STATIC_DIR", &cfg.StaticDir)
	str("CHEEZ_REMOTE", &cfg.Remote)
	if err := num("MAX_ATTEMPTS", &cfg.MaxAttempts); err != nil {
		return err
	}
	return num("PENALTY_MS", &cfg.PenaltyMS)
}

func (c *Config) normalize() error {
	target, err := words.Parse(c.Target)
	if err != nil {
		return fmt.Errorf("config: target: %w", err)
	}
	c.Target = target
	if c.MaxAttempts < 1 || c.MaxAttempts > MaxAttemptsLimit {
		return fmt.Errorf("config: max attempts %d outside 1..%d", c.MaxAttempts, MaxAttemptsLimit)
	}
	if c.PenaltyMS < 0 {
		return errors.New("config: penalty_ms must not be negative")
	}
	c.Penalty = time.Duration(c.PenaltyMS) * time.Millisecond
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
