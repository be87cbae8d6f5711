package store

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"degen-prop/internal/models"
)

// Property: Any collection of created attempts survives a persist/reload
// cycle with ids, order, statuses, and histories intact.
func TestProperty_CollectionRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	statuses := []models.AttemptStatus{models.StatusActive, models.StatusPassed, models.StatusFailed}

	properties.Property("Created attempts survive reload", prop.ForAll(
		func(count int, capital float64, statusIdx int, historyLen int) bool {
			dir := t.TempDir()
			kv, err := NewFileKV(dir)
			if err != nil {
				return false
			}
			s, err := NewCollectionStore(kv, zerolog.Nop())
			if err != nil {
				return false
			}

			ctx := context.Background()
			start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

			history := make([]models.PnLPoint, 0, historyLen)
			for day := 0; day < historyLen; day++ {
				history = append(history, models.PnLPoint{Day: day, Balance: capital})
			}

			created := make([]models.AttemptRecord, 0, count)
			for i := 0; i < count; i++ {
				rec, err := s.Create(ctx, CreateAttemptParams{
					UserEmail:      "demo@degenprop.com",
					ChallengeID:    "1",
					Status:         statuses[statusIdx],
					StartDate:      start,
					EndDate:        start.AddDate(0, 0, 30),
					InitialCapital: capital,
					CurrentBalance: capital,
					EquityHigh:     capital,
					PnLHistory:     history,
				})
				if err != nil {
					return false
				}
				created = append(created, rec)
			}

			kv2, err := NewFileKV(dir)
			if err != nil {
				return false
			}
			reloaded, err := NewCollectionStore(kv2, zerolog.Nop())
			if err != nil {
				return false
			}
			all, err := reloaded.Filter(ctx, AttemptFilter{SortKey: "created_date"})
			if err != nil || len(all) != count {
				return false
			}
			for i, rec := range all {
				want := created[i]
				if rec.ID != want.ID ||
					rec.Status != want.Status ||
					rec.InitialCapital != want.InitialCapital ||
					len(rec.PnLHistory) != len(want.PnLHistory) ||
					!rec.CreatedDate.Equal(want.CreatedDate) ||
					!rec.StartDate.Equal(want.StartDate) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 8),
		gen.Float64Range(1000, 100000),
		gen.IntRange(0, len(statuses)-1),
		gen.IntRange(0, 31),
	))

	properties.TestingRun(t)
}
