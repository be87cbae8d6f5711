package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"degen-prop/internal/models"
)

func memecoinChallenge() models.ChallengeDefinition {
	return models.ChallengeDefinition{
		ID:              "1",
		Name:            "Memecoin Madness",
		Platform:        models.PlatformPumpFun,
		InitialCapital:  10000,
		ProfitTargetPct: 20,
		MaxDrawdownPct:  10,
		DurationDays:    30,
	}
}

func attemptWithBalance(balance float64) models.AttemptRecord {
	return models.AttemptRecord{
		ID:             "a1",
		ChallengeID:    "1",
		Status:         models.StatusActive,
		InitialCapital: 10000,
		CurrentBalance: balance,
	}
}

func TestTargetAndFloorValues(t *testing.T) {
	challenge := memecoinChallenge()
	attempt := attemptWithBalance(10000)

	assert.InDelta(t, 12000, ProfitTargetValue(attempt, challenge), 1e-9)
	assert.InDelta(t, 9000, DrawdownFloorValue(attempt, challenge), 1e-9)
}

func TestProgressPercent(t *testing.T) {
	challenge := memecoinChallenge()

	tests := []struct {
		name    string
		balance float64
		want    float64
	}{
		{"at start", 10000, 0},
		{"halfway to target", 11000, 50},
		{"at target", 12000, 100},
		{"beyond target clamps to 100", 15000, 100},
		{"underwater clamps to 0", 9500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercent(attemptWithBalance(tt.balance), challenge)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestProgressPercentZeroTarget(t *testing.T) {
	challenge := memecoinChallenge()
	challenge.ProfitTargetPct = 0

	assert.Equal(t, 100.0, ProgressPercent(attemptWithBalance(10000), challenge))
	assert.Equal(t, 100.0, ProgressPercent(attemptWithBalance(12000), challenge))
	assert.Equal(t, 0.0, ProgressPercent(attemptWithBalance(9999), challenge))
}

func TestComputeOutcome(t *testing.T) {
	challenge := memecoinChallenge()

	assert.Equal(t, OutcomeActive, ComputeOutcome(attemptWithBalance(10500), challenge))
	assert.Equal(t, OutcomePassed, ComputeOutcome(attemptWithBalance(12000), challenge))
	assert.Equal(t, OutcomePassed, ComputeOutcome(attemptWithBalance(13000), challenge))
	assert.Equal(t, OutcomeFailed, ComputeOutcome(attemptWithBalance(9000), challenge))
	assert.Equal(t, OutcomeFailed, ComputeOutcome(attemptWithBalance(0), challenge))
}

func TestComputeOutcomePassWinsWhenBothRulesFire(t *testing.T) {
	// Target at 9000 and floor at 9000: a balance sitting exactly there
	// satisfies both rules, and the pass rule takes precedence.
	challenge := memecoinChallenge()
	challenge.ProfitTargetPct = -10
	challenge.MaxDrawdownPct = 10

	attempt := attemptWithBalance(9000)
	assert.Equal(t, OutcomePassed, ComputeOutcome(attempt, challenge))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	attempt := attemptWithBalance(10000)
	attempt.EndDate = now.AddDate(0, 0, 10)
	assert.Equal(t, 10, DaysRemaining(attempt, now))

	attempt.EndDate = now.Add(36 * time.Hour)
	assert.Equal(t, 2, DaysRemaining(attempt, now))

	attempt.EndDate = now.AddDate(0, 0, -3)
	assert.Equal(t, 0, DaysRemaining(attempt, now))
}

func TestPnLPercent(t *testing.T) {
	assert.InDelta(t, 5, PnLPercent(attemptWithBalance(10500)), 1e-9)
	assert.InDelta(t, -12, PnLPercent(attemptWithBalance(8800)), 1e-9)
	assert.InDelta(t, 0, PnLPercent(attemptWithBalance(10000)), 1e-9)
}

func TestComputeSnapshot(t *testing.T) {
	challenge := memecoinChallenge()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	attempt := attemptWithBalance(11000)
	attempt.EndDate = now.AddDate(0, 0, 14)

	snap := Compute(attempt, challenge, now)

	assert.InDelta(t, 12000, snap.ProfitTargetValue, 1e-9)
	assert.InDelta(t, 9000, snap.DrawdownFloorValue, 1e-9)
	assert.InDelta(t, 50, snap.ProgressPercent, 1e-9)
	assert.Equal(t, 14, snap.DaysRemaining)
	assert.InDelta(t, 10, snap.PnLPercent, 1e-9)
	assert.Equal(t, OutcomeActive, snap.Outcome)
}
