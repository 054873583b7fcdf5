// Package records implements the apartment record store: a flat collection
// of records persisted as one blob in a storage.Slot.
package records

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/storage"
)

// StorageKey is the slot key holding the record collection.
const StorageKey = "credit_line_apartment_records"

// IDPrefix starts every record id.
const IDPrefix = "apt_"

// Store provides CRUD and aggregation over apartment records.
// Every read loads the collection from the slot and every mutation writes
// the full collection back before returning. Mutations within a process
// are serialized; writers in other processes are not coordinated.
type Store struct {
	mu    sync.Mutex
	items *storage.Collection[models.Record]
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store backed by slot.
func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		items: storage.NewCollection[models.Record](slot, StorageKey),
		now:   time.Now,
		newID: func() string { return IDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all records in stored (insertion) order.
func (s *Store) List(ctx context.Context) ([]models.Record, error) {
	return s.items.View(ctx, &s.mu)
}

// Insert creates a pending record for apartment. amount is parsed leniently:
// unreadable input is stored as zero.
func (s *Store) Insert(ctx context.Context, apartment string, amount string) (models.Record, error) {
	return s.InsertAmount(ctx, apartment, calculator.ParseAmountLenient(amount))
}

// InsertAmount creates a pending record with an already parsed amount.
// Negative amounts are stored as zero.
func (s *Store) InsertAmount(ctx context.Context, apartment string, amount decimal.Decimal) (models.Record, error) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.items.Load(ctx)
	if err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		ID:        s.newID(),
		Apartment: apartment,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
		Status:    models.StatusPending,
	}

	records = append(records, record)
	if err := s.items.Save(ctx, records); err != nil {
		return models.Record{}, err
	}

	slog.Debug("Record inserted", "record_id", record.ID, "apartment", apartment, "amount", amount.String())
	return record, nil
}

// UpdateByID merges patch onto the record with the given id and returns the
// updated record. It returns an error wrapping storage.ErrNotFound if no
// record has that id; it never creates one.
func (s *Store) UpdateByID(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.items.Load(ctx)
	if err != nil {
		return models.Record{}, err
	}

	idx := indexOf(records, id)
	if idx == -1 {
		return models.Record{}, fmt.Errorf("record %s: %w", id, storage.ErrNotFound)
	}

	if patch.Amount != nil && patch.Amount.IsNegative() {
		zero := decimal.Zero
		patch.Amount = &zero
	}

	records[idx] = patch.Apply(records[idx])
	if err := s.items.Save(ctx, records); err != nil {
		return models.Record{}, err
	}

	return records[idx], nil
}

// DeleteByID removes the record with the given id. It reports false, with a
// nil error, if no record matched.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.items.Load(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOf(records, id)
	if idx == -1 {
		return false, nil
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := s.items.Save(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}

// SumAll returns the sum of Amount over the records currently stored.
// It is recomputed on every call.
func (s *Store) SumAll(ctx context.Context) (decimal.Decimal, error) {
	records, err := s.items.View(ctx, &s.mu)
	if err != nil {
		return decimal.Zero, err
	}
	return calculator.SumRecords(records), nil
}

// FindByApartment returns the first record stored for apartment.
// found is false if there is none.
func (s *Store) FindByApartment(ctx context.Context, apartment string) (record models.Record, found bool, err error) {
	records, err := s.items.View(ctx, &s.mu)
	if err != nil {
		return models.Record{}, false, err
	}
	for _, r := range records {
		if r.Apartment == apartment {
			return r, true, nil
		}
	}
	return models.Record{}, false, nil
}

func indexOf(records []models.Record, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
