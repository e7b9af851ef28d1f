// Package config loads application settings from the environment. A .env
// file in the working directory is honored via godotenv autoload in the
// command entrypoint.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	// Path of the on-disk SQLite database file.
	DBPath string `env:"SHOP_DB_PATH" envDefault:"data/shop.sqlite" validate:"required"`
	// Rows per page on paginated screens.
	PageSize int `env:"SHOP_PAGE_SIZE" envDefault:"5" validate:"gt=0"`

	Log LogConfig
}

// LogConfig selects the log sink. The default is a rotating file because
// the terminal is owned by the UI while the application runs.
type LogConfig struct {
	Level      string `env:"SHOP_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Type       string `env:"SHOP_LOG_TYPE" envDefault:"file" validate:"oneof=console file"`
	FilePath   string `env:"SHOP_LOG_FILE" envDefault:"data/shop.log"`
	MaxSizeMB  int    `env:"SHOP_LOG_MAX_SIZE_MB" envDefault:"10" validate:"gt=0"`
	MaxBackups int    `env:"SHOP_LOG_MAX_BACKUPS" envDefault:"3" validate:"gte=0"`
	MaxAgeDays int    `env:"SHOP_LOG_MAX_AGE_DAYS" envDefault:"28" validate:"gte=0"`
}

// Load parses and validates configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Log.Type == "file" && cfg.Log.FilePath == "" {
		return nil, fmt.Errorf("invalid config: log file path required for file logging")
	}
	return &cfg, nil
}
