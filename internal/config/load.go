package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/idilsaglam/taskboard/internal/store/slot"
)

// Load builds the configuration for a process started in workDir:
// 1. Defaults
// 2. User config file (<user config dir>/taskboard/config.toml)
// 3. Project config file (taskboard.toml in workDir)
// 4. .env in workDir, then TASKBOARD_* environment variables
// 5. Flags registered on fs and parsed from args
//
// Non-flag arguments remain available through fs.Args().
func Load(fs *flag.FlagSet, args []string, workDir string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if p := findProjectConfigFile(workDir); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}

	if err := loadEnvFile(workDir); err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if fs != nil {
		registerFlags(cfg, fs)
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("parsing flags: %w", err)
		}
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func findUserConfigFile() string {
	if p := os.Getenv("TASKBOARD_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "taskboard", userConfigName)
	if fileExists(p) {
		return p
	}
	return ""
}

func findProjectConfigFile(workDir string) string {
	p := filepath.Join(workDir, projectConfigName)
	if fileExists(p) {
		return p
	}
	return ""
}

// loadEnvFile exports variables from workDir/.env without overriding ones
// already set in the environment.
func loadEnvFile(workDir string) error {
	p := filepath.Join(workDir, envFileName)
	if !fileExists(p) {
		return nil
	}
	if err := godotenv.Load(p); err != nil {
		return fmt.Errorf("loading %s: %w", p, err)
	}
	return nil
}

func registerFlags(cfg *Config, fs *flag.FlagSet) {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the task slot")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: file or sqlite")
	fs.StringVar(&cfg.SlotKey, "key", cfg.SlotKey, "slot key the task list is stored under")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for deadline dates (default from LANG)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	fs.DurationVar(&cfg.DeleteDelay, "delete-delay", cfg.DeleteDelay, "fade duration before a deleted task disappears")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored CLI output")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json, logfmt")
}

func finalizeConfig(cfg *Config) error {
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	switch cfg.Storage {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage must be file or sqlite, got %q", cfg.Storage)
	}
	if err := slot.CheckKey(cfg.SlotKey); err != nil {
		return err
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.DeleteDelay <= 0 {
		return fmt.Errorf("delete delay must be positive, got %s", cfg.DeleteDelay)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dataDirName
	}
	return filepath.Join(home, dataDirName)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
