// Package config provides configuration management for the challenge platform.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	User       UserConfig       `mapstructure:"user"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	UI         UIConfig         `mapstructure:"ui"`
}

// StorageConfig holds attempt-store persistence configuration.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "file", "sqlite"
	Path    string `mapstructure:"path"`    // data file or database path
}

// SimulationConfig holds the tunables of the attempt simulator.
type SimulationConfig struct {
	BaselineVolatility float64 `mapstructure:"baseline_volatility"`
	HighVolatility     float64 `mapstructure:"high_volatility"`
	DriftBias          float64 `mapstructure:"drift_bias"`
	HistoryCapDays     int     `mapstructure:"history_cap_days"`
	Seed               int64   `mapstructure:"seed"` // 0 means time-seeded
}

// UserConfig holds the demo identity. Empty email means no current user.
type UserConfig struct {
	Email         string `mapstructure:"email"`
	Name          string `mapstructure:"name"`
	WalletAddress string `mapstructure:"wallet_address"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/degen-prop"
	}
	return filepath.Join(home, ".config", "degen-prop")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// Config file not found, write a commented template for next time.
		if werr := createTemplateConfig(configDir); werr != nil {
			return nil, fmt.Errorf("writing config template: %w", werr)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", filepath.Join(configDir, "attempts.json"))

	v.SetDefault("simulation.baseline_volatility", 0.08)
	v.SetDefault("simulation.high_volatility", 0.15)
	v.SetDefault("simulation.drift_bias", 0.48)
	v.SetDefault("simulation.history_cap_days", 30)
	v.SetDefault("simulation.seed", 0)

	v.SetDefault("user.email", "demo@degenprop.com")
	v.SetDefault("user.name", "Demo Trader")
	v.SetDefault("user.wallet_address", "0x1234567890abcdef1234567890abcdef12345678")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "degenprop.log"))
	v.SetDefault("logging.max_size", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DEGENPROP_USER_EMAIL"); v != "" {
		cfg.User.Email = v
	}
	if v := os.Getenv("DEGENPROP_USER_NAME"); v != "" {
		cfg.User.Name = v
	}
	if v := os.Getenv("DEGENPROP_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("DEGENPROP_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("DEGENPROP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Storage.Backend != "file" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("invalid storage backend: %s (must be 'file' or 'sqlite')", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if c.Simulation.BaselineVolatility <= 0 || c.Simulation.BaselineVolatility > 1 {
		return fmt.Errorf("baseline_volatility must be in (0, 1]")
	}
	if c.Simulation.HighVolatility <= 0 || c.Simulation.HighVolatility > 1 {
		return fmt.Errorf("high_volatility must be in (0, 1]")
	}
	if c.Simulation.DriftBias < 0 || c.Simulation.DriftBias > 1 {
		return fmt.Errorf("drift_bias must be between 0 and 1")
	}
	if c.Simulation.HistoryCapDays <= 0 {
		return fmt.Errorf("history_cap_days must be positive")
	}
	return nil
}
