package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"degen-prop/internal/errors"
	"degen-prop/internal/logging"
	"degen-prop/internal/models"
)

// CollectionStore implements AttemptStore over a KV persistence boundary.
// Records are indexed by id in memory; insertion order is kept separately so
// sort ties resolve in store order. Every mutation serializes and rewrites
// the whole collection under CollectionKey.
type CollectionStore struct {
	mu     sync.RWMutex
	kv     KV
	byID   map[string]models.AttemptRecord
	order  []string
	logger zerolog.Logger
	closed bool

	// now is swappable for tests.
	now func() time.Time
}

// NewCollectionStore loads the attempt collection from kv and returns a store
// over it. A missing collection is valid and starts empty.
func NewCollectionStore(kv KV, logger zerolog.Logger) (*CollectionStore, error) {
	s := &CollectionStore{
		kv:     kv,
		byID:   make(map[string]models.AttemptRecord),
		logger: logger,
		now:    time.Now,
	}

	data, ok, err := kv.Get(CollectionKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var records []models.AttemptRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.NewStoreError("load", CollectionKey, err)
		}
		for _, rec := range records {
			s.byID[rec.ID] = rec
			s.order = append(s.order, rec.ID)
		}
	}

	return s, nil
}

// Create assigns a new unique id and created_date, merges params over
// defaults, appends to the collection, and persists it whole.
func (s *CollectionStore) Create(ctx context.Context, params CreateAttemptParams) (models.AttemptRecord, error) {
	if err := validateCreate(params); err != nil {
		return models.AttemptRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.AttemptRecord{}, errors.ErrStoreClosed
	}

	rec := models.AttemptRecord{
		ID:              newID(),
		UserEmail:       params.UserEmail,
		ChallengeID:     params.ChallengeID,
		ChallengeName:   params.ChallengeName,
		Status:          params.Status,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		InitialCapital:  params.InitialCapital,
		CurrentBalance:  params.CurrentBalance,
		EquityHigh:      params.EquityHigh,
		PnLHistory:      params.PnLHistory,
		SimulatedTrades: params.SimulatedTrades,
		CreatedDate:     s.now().UTC(),
	}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	if rec.PnLHistory == nil {
		rec.PnLHistory = []models.PnLPoint{}
	}
	if rec.SimulatedTrades == nil {
		rec.SimulatedTrades = []models.SimulatedTrade{}
	}

	s.byID[rec.ID] = rec
	s.order = append(s.order, rec.ID)

	if err := s.persistLocked(ctx); err != nil {
		// Roll the in-memory state back so a failed persist is not observable.
		delete(s.byID, rec.ID)
		s.order = s.order[:len(s.order)-1]
		return models.AttemptRecord{}, err
	}

	logging.LogAttemptCreated(s.logger, rec.ID, rec.ChallengeID, rec.UserEmail, rec.CurrentBalance)
	return rec, nil
}

// Get returns the attempt with the given id.
func (s *CollectionStore) Get(ctx context.Context, id string) (models.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return models.AttemptRecord{}, errors.ErrStoreClosed
	}

	rec, ok := s.byID[id]
	if !ok {
		return models.AttemptRecord{}, errors.NewNotFoundError("attempt", id)
	}
	return rec, nil
}

// Filter returns attempts matching every set criterion, sorted by the
// filter's timestamp key, truncated to the limit.
func (s *CollectionStore) Filter(ctx context.Context, filter AttemptFilter) ([]models.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, errors.ErrStoreClosed
	}

	var matched []models.AttemptRecord
	for _, id := range s.order {
		rec := s.byID[id]
		if filter.UserEmail != "" && rec.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.ChallengeID != "" && rec.ChallengeID != filter.ChallengeID {
			continue
		}
		matched = append(matched, rec)
	}

	sortAttempts(matched, filter.SortKey)

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Update shallow-merges update onto the stored record matching id, persists
// the collection, and returns the updated record. A missing id is an
// explicit NotFoundError, never a silent no-op.
func (s *CollectionStore) Update(ctx context.Context, id string, update models.AttemptUpdate) (models.AttemptRecord, error) {
	if update.Status != nil && !update.Status.Valid() {
		return models.AttemptRecord{}, errors.NewValidationError("status", *update.Status, "must be active, passed, or failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.AttemptRecord{}, errors.ErrStoreClosed
	}

	rec, ok := s.byID[id]
	if !ok {
		return models.AttemptRecord{}, errors.NewNotFoundError("attempt", id)
	}
	prev := rec

	if update.Status != nil {
		rec.Status = *update.Status
	}
	if update.CurrentBalance != nil {
		rec.CurrentBalance = *update.CurrentBalance
	}
	if update.EquityHigh != nil {
		rec.EquityHigh = *update.EquityHigh
	}
	if update.EndDate != nil {
		rec.EndDate = *update.EndDate
	}
	if update.PnLHistory != nil {
		rec.PnLHistory = update.PnLHistory
	}

	s.byID[id] = rec
	if err := s.persistLocked(ctx); err != nil {
		s.byID[id] = prev
		return models.AttemptRecord{}, err
	}

	logging.LogAttemptUpdated(s.logger, rec.ID, string(rec.Status))
	return rec, nil
}

// Close releases the underlying KV. Further operations fail with
// ErrStoreClosed.
func (s *CollectionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.kv.Close()
}

// persistLocked serializes the whole collection in store order and writes it
// under CollectionKey. Callers must hold the write lock.
func (s *CollectionStore) persistLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStoreError("persist", CollectionKey, err)
	}

	start := time.Now()
	records := make([]models.AttemptRecord, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.byID[id])
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.NewStoreError("persist", CollectionKey, err)
	}
	if err := s.kv.Set(CollectionKey, data); err != nil {
		return err
	}

	logging.LogCollectionPersisted(s.logger, CollectionKey, len(records), time.Since(start))
	return nil
}

func validateCreate(params CreateAttemptParams) error {
	if strings.TrimSpace(params.UserEmail) == "" {
		return errors.NewValidationError("user_email", params.UserEmail, "must not be empty")
	}
	if strings.TrimSpace(params.ChallengeID) == "" {
		return errors.NewValidationError("challenge_id", params.ChallengeID, "must not be empty")
	}
	if params.InitialCapital <= 0 {
		return errors.NewValidationError("initial_capital", params.InitialCapital, "must be positive")
	}
	if params.Status != "" && !params.Status.Valid() {
		return errors.NewValidationError("status", params.Status, "must be active, passed, or failed")
	}
	if !params.EndDate.IsZero() && !params.EndDate.After(params.StartDate) {
		return errors.NewValidationError("end_date", params.EndDate, "must be after start_date")
	}
	return nil
}

// sortAttempts orders records by the given timestamp field, "-" prefix for
// descending. Unknown or empty keys fall back to "-created_date". The sort is
// stable so ties keep store order.
func sortAttempts(records []models.AttemptRecord, sortKey string) {
	if sortKey == "" {
		sortKey = "-created_date"
	}
	descending := strings.HasPrefix(sortKey, "-")
	field := strings.TrimPrefix(sortKey, "-")

	key := func(rec models.AttemptRecord) time.Time {
		switch field {
		case "start_date":
			return rec.StartDate
		case "end_date":
			return rec.EndDate
		default:
			return rec.CreatedDate
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if descending {
			return key(records[i]).After(key(records[j]))
		}
		return key(records[i]).Before(key(records[j]))
	})
}
