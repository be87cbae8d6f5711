// Package store provides persistence for attempt records.
//
// The attempt collection is serialized as a single JSON sequence under one
// well-known key and rewritten whole on every mutation. That is acceptable at
// demo scale; the KV boundary keeps serialization separately testable so a
// real backend can replace it without touching store semantics.
package store

import (
	"context"
	"time"

	"degen-prop/internal/models"
)

// CollectionKey is the well-known key the attempt collection lives under.
const CollectionKey = "trader_attempts"

// AttemptStore defines create/query/update operations over the attempt
// collection. Implementations are safe for use by a single logical owner;
// concurrent multi-process access is not supported.
type AttemptStore interface {
	Create(ctx context.Context, params CreateAttemptParams) (models.AttemptRecord, error)
	Filter(ctx context.Context, filter AttemptFilter) ([]models.AttemptRecord, error)
	Get(ctx context.Context, id string) (models.AttemptRecord, error)
	Update(ctx context.Context, id string, update models.AttemptUpdate) (models.AttemptRecord, error)
	Close() error
}

// CreateAttemptParams holds the caller-supplied fields for a new attempt.
// Status defaults to active; history and trades default to empty sequences.
// UserEmail, ChallengeID, and a positive InitialCapital are required.
type CreateAttemptParams struct {
	UserEmail       string
	ChallengeID     string
	ChallengeName   string
	Status          models.AttemptStatus
	StartDate       time.Time
	EndDate         time.Time
	InitialCapital  float64
	CurrentBalance  float64
	EquityHigh      float64
	PnLHistory      []models.PnLPoint
	SimulatedTrades []models.SimulatedTrade
}

// AttemptFilter selects and orders attempts. Empty criteria match everything.
type AttemptFilter struct {
	UserEmail   string
	Status      models.AttemptStatus
	ChallengeID string
	// SortKey is a timestamp field name (created_date, start_date, end_date),
	// optionally prefixed with "-" for descending order. Ties keep store
	// order. Defaults to "-created_date".
	SortKey string
	// Limit truncates after sorting; 0 means no limit.
	Limit int
}
