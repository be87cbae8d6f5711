package models

import "time"

// AttemptStatus is the persisted lifecycle state of an attempt.
// The store only ever writes "active" on creation; pass/fail is computed
// from balances at read time and persisted only through an explicit update.
type AttemptStatus string

const (
	StatusActive AttemptStatus = "active"
	StatusPassed AttemptStatus = "passed"
	StatusFailed AttemptStatus = "failed"
)

// Valid reports whether s is a known attempt status.
func (s AttemptStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPassed, StatusFailed:
		return true
	}
	return false
}

// PnLPoint is one day of the simulated balance history.
type PnLPoint struct {
	Day     int     `json:"day"`
	Balance float64 `json:"balance"`
}

// SimulatedTrade is a trade record in an attempt's history. The simulator
// declares the shape but never populates it.
type SimulatedTrade struct {
	Timestamp time.Time `json:"timestamp"`
	Symbol    string    `json:"symbol"`
	Side      string    `json:"side"`
	Size      float64   `json:"size"`
	Price     float64   `json:"price"`
	PnL       float64   `json:"pnl"`
}

// AttemptRecord is one user's instance of attempting a challenge, with its
// simulated performance history. InitialCapital is copied from the challenge
// at creation time so the attempt is decoupled from later catalog changes.
type AttemptRecord struct {
	ID              string           `json:"id"`
	UserEmail       string           `json:"user_email"`
	ChallengeID     string           `json:"challenge_id"`
	ChallengeName   string           `json:"challenge_name,omitempty"`
	Status          AttemptStatus    `json:"status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	InitialCapital  float64          `json:"initial_capital"`
	CurrentBalance  float64          `json:"current_balance"`
	EquityHigh      float64          `json:"equity_high"`
	PnLHistory      []PnLPoint       `json:"simulated_pnl_history"`
	SimulatedTrades []SimulatedTrade `json:"simulated_trades"`
	CreatedDate     time.Time        `json:"created_date"`
}

// AttemptUpdate holds the fields a store update may change. Nil fields are
// left untouched (shallow merge onto the stored record).
type AttemptUpdate struct {
	Status         *AttemptStatus
	CurrentBalance *float64
	EquityHigh     *float64
	EndDate        *time.Time
	PnLHistory     []PnLPoint
}
