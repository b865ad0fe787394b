// Package config loads taskboard settings from defaults, TOML files, a .env
// file, TASKBOARD_* environment variables and command-line flags, each layer
// overriding the previous one.
package config

import (
	"time"
)

// Config holds every tunable setting.
type Config struct {
	DataDir     string        `toml:"data_dir"`
	Storage     string        `toml:"storage"` // file | sqlite
	SlotKey     string        `toml:"slot_key"`
	Locale      string        `toml:"locale"` // empty: LC_ALL, LC_TIME, LANG
	Theme       string        `toml:"theme"`
	DeleteDelay time.Duration `toml:"delete_delay"`
	NoColor     bool          `toml:"no_color"`

	LogFile   string `toml:"log_file"` // empty: discard
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

const (
	DefaultStorage     = "file"
	DefaultSlotKey     = "tasks"
	DefaultTheme       = "classic"
	DefaultDeleteDelay = 300 * time.Millisecond
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"

	projectConfigName = "taskboard.toml"
	userConfigName    = "config.toml"
	envFileName       = ".env"
	dataDirName       = ".taskboard"
)

func setDefaults(cfg *Config) {
	cfg.DataDir = defaultDataDir()
	cfg.Storage = DefaultStorage
	cfg.SlotKey = DefaultSlotKey
	cfg.Theme = DefaultTheme
	cfg.DeleteDelay = DefaultDeleteDelay
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
