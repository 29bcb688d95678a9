package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory
	AppName = "overtimeit"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration. These are host-level
// preferences; the ledger's own settings (standard day, rounding step) live
// in the persisted ledger record and only fall back to these values when a
// fresh ledger is created.
type Config struct {
	// DefaultStandardDayMins seeds a fresh ledger's expected minutes per day
	DefaultStandardDayMins int `toml:"default_standard_day_mins"`
	// DefaultRoundingStep seeds a fresh ledger's rounding step (0, 5 or 15)
	DefaultRoundingStep int `toml:"default_rounding_step"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultStandardDayMins: 480,
		DefaultRoundingStep:    0,
		Theme:                  "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Save writes the config to path as TOML. Used to persist the TUI theme
// choice; the other fields round-trip unchanged.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// LoadOrDefault loads the config file at path, returning defaults when the
// file does not exist. A file that exists but does not parse is an error;
// unlike the ledger record, the config is hand-written and silently
// ignoring a typo would hide it from the user.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.DefaultStandardDayMins <= 0 {
		cfg.DefaultStandardDayMins = DefaultConfig().DefaultStandardDayMins
	}
	switch cfg.DefaultRoundingStep {
	case 0, 5, 15:
	default:
		cfg.DefaultRoundingStep = 0
	}

	return cfg, nil
}
