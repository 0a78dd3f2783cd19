// Package config loads the application configuration: where the data lives,
// which storage backend holds it, and display defaults. Configuration only
// shapes defaults and rendering; it never restricts which slots can be
// toggled or exported.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/valery-blanc/timesheet-pal/internal/kv"
	"github.com/valery-blanc/timesheet-pal/internal/kv/sqlite"
)

// Supported storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the application configuration.
type Config struct {
	Backend   string `mapstructure:"backend"`
	DataDir   string `mapstructure:"data_dir"`
	Locale    string `mapstructure:"locale"`
	WorkHours struct {
		Start int `mapstructure:"start"`
		End   int `mapstructure:"end"`
	} `mapstructure:"work_hours"`
}

// Load reads the config file from dir (default ~/.timesheet, overridable via
// the TIMESHEET_CONFIG environment variable), falling back to defaults when
// no file exists.
func Load() (Config, error) {
	dir := os.Getenv("TIMESHEET_CONFIG")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dir = filepath.Join(home, ".timesheet")
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.yaml from the given directory.
func LoadFrom(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("backend", BackendFile)
	v.SetDefault("data_dir", dir)
	v.SetDefault("locale", "en")
	v.SetDefault("work_hours.start", 8)
	v.SetDefault("work_hours.end", 18)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Locale != "en" && cfg.Locale != "fr" {
		return Config{}, fmt.Errorf("unsupported locale %q (expected en or fr)", cfg.Locale)
	}
	return cfg, nil
}

// OpenStore opens the configured key-value backend.
func (c Config) OpenStore() (kv.Store, error) {
	switch c.Backend {
	case BackendFile:
		return kv.NewFileStore(c.DataDir), nil
	case BackendSQLite:
		return sqlite.Open(filepath.Join(c.DataDir, "timesheet.db"))
	case BackendMemory:
		return kv.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", c.Backend)
}
