package config

import (
	"os"
	"path/filepath"
)

const configTemplate = `# DegenProp Configuration

[storage]
# Attempt store backend: "file" (JSON) or "sqlite"
backend = "file"
# Data file path. For sqlite, a .db path, e.g. "~/.config/degen-prop/degenprop.db"
# path = "~/.config/degen-prop/attempts.json"

[simulation]
# Daily swing factor for derivatives venues
baseline_volatility = 0.08
# Daily swing factor for memecoin venues (Pump.fun)
high_volatility = 0.15
# Uniform draw offset; 0.5 is driftless, lower drifts up
drift_bias = 0.48
# History is capped at this many simulated days
history_cap_days = 30
# Fixed RNG seed for reproducible runs; 0 seeds from the clock
seed = 0

[user]
# Demo identity. Clear the email to simulate a logged-out state.
email = "demo@degenprop.com"
name = "Demo Trader"
wallet_address = "0x1234567890abcdef1234567890abcdef12345678"

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = true
max_size = 50
max_backups = 5
max_age = 30

[ui]
color_enabled = true
date_format = "02-Jan-2006"
`

// createTemplateConfig writes a commented config template if none exists.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
