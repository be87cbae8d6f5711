// Package metrics computes presentation values derived from an attempt and
// its challenge. All functions are pure; nothing here touches the store.
package metrics

import (
	"math"
	"time"

	"degen-prop/internal/models"
)

// Outcome is the computed pass/fail state of an attempt. It is derived from
// balances at read time, independent of the persisted status field.
type Outcome string

const (
	OutcomeActive Outcome = "active"
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
)

// ProfitTargetValue is the balance at or above which the attempt passes.
func ProfitTargetValue(attempt models.AttemptRecord, challenge models.ChallengeDefinition) float64 {
	return attempt.InitialCapital * (1 + challenge.ProfitTargetPct/100)
}

// DrawdownFloorValue is the balance at or below which the attempt fails.
func DrawdownFloorValue(attempt models.AttemptRecord, challenge models.ChallengeDefinition) float64 {
	return attempt.InitialCapital * (1 - challenge.MaxDrawdownPct/100)
}

// ProgressPercent is how far the current balance has moved from the initial
// capital toward the profit target, clamped to [0, 100]. A zero profit target
// means the attempt is already at target whenever the balance has not dipped
// below the starting capital.
func ProgressPercent(attempt models.AttemptRecord, challenge models.ChallengeDefinition) float64 {
	target := ProfitTargetValue(attempt, challenge)
	if target == attempt.InitialCapital {
		if attempt.CurrentBalance >= attempt.InitialCapital {
			return 100
		}
		return 0
	}
	progress := (attempt.CurrentBalance - attempt.InitialCapital) / (target - attempt.InitialCapital) * 100
	return math.Max(0, math.Min(100, progress))
}

// DaysRemaining is the whole days between now and the attempt's end date,
// never negative.
func DaysRemaining(attempt models.AttemptRecord, now time.Time) int {
	days := math.Round(attempt.EndDate.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}

// PnLPercent is the signed return on the initial capital.
func PnLPercent(attempt models.AttemptRecord) float64 {
	return (attempt.CurrentBalance - attempt.InitialCapital) / attempt.InitialCapital * 100
}

// ComputeOutcome evaluates pass/fail thresholds against the current balance.
// The pass check is evaluated first: when both thresholds are simultaneously
// satisfied the attempt passes.
func ComputeOutcome(attempt models.AttemptRecord, challenge models.ChallengeDefinition) Outcome {
	if attempt.CurrentBalance >= ProfitTargetValue(attempt, challenge) {
		return OutcomePassed
	}
	if attempt.CurrentBalance <= DrawdownFloorValue(attempt, challenge) {
		return OutcomeFailed
	}
	return OutcomeActive
}

// Snapshot aggregates every derived metric the dashboard needs.
type Snapshot struct {
	ProfitTargetValue  float64
	DrawdownFloorValue float64
	ProgressPercent    float64
	DaysRemaining      int
	PnLPercent         float64
	Outcome            Outcome
}

// Compute builds a Snapshot of attempt against challenge at the given time.
func Compute(attempt models.AttemptRecord, challenge models.ChallengeDefinition, now time.Time) Snapshot {
	return Snapshot{
		ProfitTargetValue:  ProfitTargetValue(attempt, challenge),
		DrawdownFloorValue: DrawdownFloorValue(attempt, challenge),
		ProgressPercent:    ProgressPercent(attempt, challenge),
		DaysRemaining:      DaysRemaining(attempt, now),
		PnLPercent:         PnLPercent(attempt),
		Outcome:            ComputeOutcome(attempt, challenge),
	}
}
