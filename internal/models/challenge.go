// Package models provides domain models for the challenge platform.
package models

// Platform identifies the trading venue a challenge runs on.
type Platform string

const (
	PlatformPumpFun       Platform = "Pump.fun"
	PlatformDrift         Platform = "Drift"
	PlatformHyperliquid   Platform = "Hyperliquid"
	PlatformJupiter       Platform = "Jupiter"
	PlatformMulti         Platform = "Multi-Platform"
	PlatformDriftAndHyper Platform = "Drift + Hyperliquid"
)

// ChallengeDefinition is an immutable challenge template from the catalog.
// Definitions are loaded at process start and never mutated.
type ChallengeDefinition struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Platform        Platform `json:"platform"`
	InitialCapital  float64  `json:"initial_capital"`
	ProfitTargetPct float64  `json:"profit_target_percent"`
	MaxDrawdownPct  float64  `json:"max_drawdown_percent"`
	DurationDays    int      `json:"duration_days"`
	Fee             float64  `json:"fee"`
	ProfitSplit     float64  `json:"profit_split"`
	Leverage        string   `json:"leverage"`
	ImageURL        string   `json:"image_url,omitempty"`
}
