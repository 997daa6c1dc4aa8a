package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken  string `envconfig:"BOT_TOKEN"` // empty: reminders are only logged
	ChatID    int64  `envconfig:"CHAT_ID"`   // 0: bound by the first /start
	DBPath    string `envconfig:"DB_PATH" default:"./data/medications.db"`
	DefaultTZ string `envconfig:"DEFAULT_TZ" default:"Europe/Moscow"` // the one local zone for all schedules
	CheckSpec string `envconfig:"CHECK_SPEC" default:"* * * * *"`     // cron spec of the due check
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`           // debug|info|warn|error
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`          // json|console
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location resolves DefaultTZ.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DefaultTZ)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TZ %q: %w", c.DefaultTZ, err)
	}
	return loc, nil
}
