package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "attempts.json"), cfg.Storage.Path)
	assert.Equal(t, 0.08, cfg.Simulation.BaselineVolatility)
	assert.Equal(t, 0.15, cfg.Simulation.HighVolatility)
	assert.Equal(t, 0.48, cfg.Simulation.DriftBias)
	assert.Equal(t, 30, cfg.Simulation.HistoryCapDays)
	assert.Equal(t, "demo@degenprop.com", cfg.User.Email)
	assert.Equal(t, "info", cfg.Logging.Level)

	// First load writes a commented template for next time.
	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "sqlite"
path = "/tmp/degenprop.db"

[user]
email = "trader@example.com"

[simulation]
seed = 42
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/degenprop.db", cfg.Storage.Path)
	assert.Equal(t, "trader@example.com", cfg.User.Email)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	// Untouched sections keep their defaults.
	assert.Equal(t, 0.08, cfg.Simulation.BaselineVolatility)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DEGENPROP_USER_EMAIL", "env@degenprop.com")
	t.Setenv("DEGENPROP_STORAGE_BACKEND", "sqlite")
	t.Setenv("DEGENPROP_STORAGE_PATH", "/tmp/env.db")
	t.Setenv("DEGENPROP_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env@degenprop.com", cfg.User.Email)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage: StorageConfig{Backend: "file", Path: "/tmp/attempts.json"},
			Simulation: SimulationConfig{
				BaselineVolatility: 0.08,
				HighVolatility:     0.15,
				DriftBias:          0.48,
				HistoryCapDays:     30,
			},
		}
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"empty path", func(c *Config) { c.Storage.Path = "" }},
		{"zero baseline vol", func(c *Config) { c.Simulation.BaselineVolatility = 0 }},
		{"high vol above 1", func(c *Config) { c.Simulation.HighVolatility = 1.5 }},
		{"negative drift bias", func(c *Config) { c.Simulation.DriftBias = -0.1 }},
		{"zero history cap", func(c *Config) { c.Simulation.HistoryCapDays = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
