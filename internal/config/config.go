package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-driven settings. Everything has a workable
// default for a fresh install.
type Config struct {
	DBPath      string `env:"TB_DB_PATH"`
	SessionPath string `env:"TB_SESSION_PATH"`

	// SessionSecret signs local session tokens. Single-machine install, so a
	// default exists, but it can be overridden.
	SessionSecret string `env:"TB_SESSION_SECRET" envDefault:"taskbuddy-local-session"`

	LogLevel      string `env:"TB_LOG_LEVEL" envDefault:"info"`
	LogPath       string `env:"TB_LOG_PATH"`
	LogMaxSizeMB  int    `env:"TB_LOG_MAX_SIZE_MB" envDefault:"20"`
	LogMaxBackups int    `env:"TB_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"TB_LOG_MAX_AGE_DAYS" envDefault:"7"`

	// RolloverInterval is the TUI's rollover tick period.
	RolloverInterval time.Duration `env:"TB_ROLLOVER_INTERVAL" envDefault:"60s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" || cfg.SessionPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("get home dir: %w", err)
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(homeDir, ".taskbuddy.db")
		}
		if cfg.SessionPath == "" {
			cfg.SessionPath = filepath.Join(homeDir, ".taskbuddy-session")
		}
	}
	return cfg, nil
}
