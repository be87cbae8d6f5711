// Package simulate produces synthetic day-by-day balance histories for
// challenge attempts. This is a presentation-only stochastic model: the
// contract is the shape of the law (bounds, length, starting value, volatility
// differentiation), not the exact numbers.
package simulate

import (
	"math"
	"math/rand"
	"time"

	"degen-prop/internal/models"
)

// Config holds the simulator tunables.
type Config struct {
	// BaselineVolatility scales daily swings on derivatives venues.
	BaselineVolatility float64
	// HighVolatility scales daily swings on memecoin venues. Memecoin-style
	// venues swing materially harder, roughly 1.9x the baseline.
	HighVolatility float64
	// DriftBias is the offset subtracted from the uniform draw. 0.5 is
	// driftless; lower values drift the curve up slightly.
	DriftBias float64
	// HistoryCapDays caps the simulated history length.
	HistoryCapDays int
}

// DefaultConfig returns the stock simulator tuning.
func DefaultConfig() Config {
	return Config{
		BaselineVolatility: 0.08,
		HighVolatility:     0.15,
		DriftBias:          0.48,
		HistoryCapDays:     30,
	}
}

// Result is the outcome of simulating one attempt.
type Result struct {
	History      []models.PnLPoint
	FinalBalance float64
	EquityHigh   float64
}

// Simulator generates synthetic attempt histories.
type Simulator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a simulator with the given config and RNG. A nil rng is
// time-seeded.
func New(cfg Config, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.HistoryCapDays <= 0 {
		cfg.HistoryCapDays = DefaultConfig().HistoryCapDays
	}
	return &Simulator{cfg: cfg, rng: rng}
}

// Simulate produces a balance history for the given challenge. Day 0 carries
// the initial capital; each later day applies one volatility-scaled delta,
// floored at zero. Always succeeds for any valid challenge.
func (s *Simulator) Simulate(challenge models.ChallengeDefinition) Result {
	days := challenge.DurationDays
	if days > s.cfg.HistoryCapDays {
		days = s.cfg.HistoryCapDays
	}

	vol := s.volatilityFor(challenge.Platform)
	history := make([]models.PnLPoint, 0, days+1)
	balance := challenge.InitialCapital
	equityHigh := balance

	for day := 0; day <= days; day++ {
		history = append(history, models.PnLPoint{Day: day, Balance: balance})
		if balance > equityHigh {
			equityHigh = balance
		}
		delta := (s.rng.Float64() - s.cfg.DriftBias) * challenge.InitialCapital * vol
		balance = math.Max(0, balance+delta)
	}

	return Result{
		History:      history,
		FinalBalance: history[len(history)-1].Balance,
		EquityHigh:   equityHigh,
	}
}

// volatilityFor returns the daily swing factor for a platform. Pump.fun is
// the designated high-volatility venue.
func (s *Simulator) volatilityFor(platform models.Platform) float64 {
	if platform == models.PlatformPumpFun {
		return s.cfg.HighVolatility
	}
	return s.cfg.BaselineVolatility
}
