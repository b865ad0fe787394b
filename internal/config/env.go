package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// loadFromEnv overrides config from TASKBOARD_* environment variables.
func loadFromEnv(cfg *Config) error {
	strs := map[string]*string{
		"TASKBOARD_DATA_DIR":   &cfg.DataDir,
		"TASKBOARD_STORAGE":    &cfg.Storage,
		"TASKBOARD_SLOT_KEY":   &cfg.SlotKey,
		"TASKBOARD_LOCALE":     &cfg.Locale,
		"TASKBOARD_THEME":      &cfg.Theme,
		"TASKBOARD_LOG_FILE":   &cfg.LogFile,
		"TASKBOARD_LOG_LEVEL":  &cfg.LogLevel,
		"TASKBOARD_LOG_FORMAT": &cfg.LogFormat,
	}
	for k, dst := range strs {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("TASKBOARD_DELETE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TASKBOARD_DELETE_DELAY: %w", err)
		}
		cfg.DeleteDelay = d
	}
	if v := os.Getenv("TASKBOARD_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TASKBOARD_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}
