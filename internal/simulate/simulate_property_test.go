package simulate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"degen-prop/internal/models"
)

// Property: For any challenge, the simulated history starts at the initial
// capital on day 0, has exactly min(duration, cap)+1 points with consecutive
// day indices, and never goes below zero.
func TestProperty_SimulatedHistoryShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	platforms := []models.Platform{
		models.PlatformPumpFun,
		models.PlatformDrift,
		models.PlatformHyperliquid,
		models.PlatformJupiter,
		models.PlatformMulti,
		models.PlatformDriftAndHyper,
	}

	properties.Property("History has the right shape and stays non-negative", prop.ForAll(
		func(capital float64, duration int, platformIdx int) bool {
			challenge := models.ChallengeDefinition{
				ID:             "test",
				Platform:       platforms[platformIdx],
				InitialCapital: capital,
				DurationDays:   duration,
			}

			sim := New(DefaultConfig(), nil)
			result := sim.Simulate(challenge)

			days := duration
			if days > DefaultConfig().HistoryCapDays {
				days = DefaultConfig().HistoryCapDays
			}
			if len(result.History) != days+1 {
				return false
			}
			if result.History[0].Day != 0 || result.History[0].Balance != capital {
				return false
			}
			for i, point := range result.History {
				if point.Day != i {
					return false
				}
				if point.Balance < 0 {
					return false
				}
			}
			return result.FinalBalance == result.History[len(result.History)-1].Balance
		},
		gen.Float64Range(1000, 1_000_000),
		gen.IntRange(1, 120),
		gen.IntRange(0, len(platforms)-1),
	))

	properties.Property("Equity high is the maximum recorded balance", prop.ForAll(
		func(capital float64, duration int, seed int64) bool {
			challenge := models.ChallengeDefinition{
				ID:             "test",
				Platform:       models.PlatformDrift,
				InitialCapital: capital,
				DurationDays:   duration,
			}

			sim := New(DefaultConfig(), rand.New(rand.NewSource(seed)))
			result := sim.Simulate(challenge)

			max := result.History[0].Balance
			for _, point := range result.History {
				if point.Balance > max {
					max = point.Balance
				}
			}
			return result.EquityHigh == max
		},
		gen.Float64Range(1000, 1_000_000),
		gen.IntRange(1, 120),
		gen.Int64(),
	))

	properties.Property("Daily deltas respect the platform volatility bound", prop.ForAll(
		func(duration int, platformIdx int, seed int64) bool {
			challenge := models.ChallengeDefinition{
				ID:             "test",
				Platform:       platforms[platformIdx],
				InitialCapital: 10000,
				DurationDays:   duration,
			}

			cfg := DefaultConfig()
			sim := New(cfg, rand.New(rand.NewSource(seed)))
			result := sim.Simulate(challenge)

			vol := cfg.BaselineVolatility
			if challenge.Platform == models.PlatformPumpFun {
				vol = cfg.HighVolatility
			}
			// |delta| <= max(1-bias, bias) * capital * vol, unless clamped at 0.
			bound := (1 - cfg.DriftBias) * challenge.InitialCapital * vol
			if cfg.DriftBias*challenge.InitialCapital*vol > bound {
				bound = cfg.DriftBias * challenge.InitialCapital * vol
			}
			for i := 1; i < len(result.History); i++ {
				delta := result.History[i].Balance - result.History[i-1].Balance
				if delta > bound+1e-9 {
					return false
				}
				if result.History[i].Balance > 0 && -delta > bound+1e-9 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 120),
		gen.IntRange(0, len(platforms)-1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
