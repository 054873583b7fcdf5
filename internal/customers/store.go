// Package customers stores residents with a running credit balance and the
// purchases and payments recorded against them.
//
// Customers and transactions live in two slot keys, each holding a whole
// JSON collection, the same layout the record store uses.
package customers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/storage"
)

const (
	CustomersKey    = "credit_line_customers"
	TransactionsKey = "credit_line_transactions"
)

// ErrInvalidTransaction is returned for transactions with an unknown type or
// a non-positive amount.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Store provides customer and transaction operations.
type Store struct {
	mu           sync.Mutex
	customers    *storage.Collection[models.Customer]
	transactions *storage.Collection[models.Transaction]
	now          func() time.Time
}

// New creates a Store backed by slot.
func New(slot storage.Slot) *Store {
	return NewWithClock(slot, time.Now)
}

// NewWithClock creates a Store whose timestamps come from now.
func NewWithClock(slot storage.Slot, now func() time.Time) *Store {
	return &Store{
		customers:    storage.NewCollection[models.Customer](slot, CustomersKey),
		transactions: storage.NewCollection[models.Transaction](slot, TransactionsKey),
		now:          now,
	}
}

// List returns all customers in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers.View(ctx, &s.mu)
}

// Get returns the customer with the given id, or an error wrapping
// storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (models.Customer, error) {
	customers, err := s.customers.View(ctx, &s.mu)
	if err != nil {
		return models.Customer{}, err
	}
	idx := customerIndex(customers, id)
	if idx == -1 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, storage.ErrNotFound)
	}
	return customers[idx], nil
}

// Add creates a customer from form. The form is not validated here; see
// ValidateForm.
func (s *Store) Add(ctx context.Context, form models.CustomerForm) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.customers.Load(ctx)
	if err != nil {
		return models.Customer{}, err
	}

	now := s.now().UTC()
	customer := models.Customer{
		ID:              uuid.NewString(),
		Name:            form.Name,
		ApartmentNumber: form.ApartmentNumber,
		PhoneNumber:     form.PhoneNumber,
		AmountDue:       form.AmountDue,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.customers.Save(ctx, append(customers, customer)); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// Update merges patch onto the customer and bumps UpdatedAt.
// It returns an error wrapping storage.ErrNotFound if the id is unknown.
func (s *Store) Update(ctx context.Context, id string, patch models.CustomerPatch) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(ctx, id, patch)
}

func (s *Store) update(ctx context.Context, id string, patch models.CustomerPatch) (models.Customer, error) {
	customers, err := s.customers.Load(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	idx := customerIndex(customers, id)
	if idx == -1 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, storage.ErrNotFound)
	}

	updated := patch.Apply(customers[idx])
	updated.UpdatedAt = s.now().UTC()
	customers[idx] = updated

	if err := s.customers.Save(ctx, customers); err != nil {
		return models.Customer{}, err
	}
	return updated, nil
}

// Delete removes the customer and all of its transactions. It reports false
// if no customer had the id.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.customers.Load(ctx)
	if err != nil {
		return false, err
	}
	idx := customerIndex(customers, id)
	if idx == -1 {
		return false, nil
	}

	customers = append(customers[:idx], customers[idx+1:]...)
	if err := s.customers.Save(ctx, customers); err != nil {
		return false, err
	}

	txs, err := s.transactions.Load(ctx)
	if err != nil {
		return true, err
	}
	kept := slices.DeleteFunc(txs, func(tx models.Transaction) bool {
		return tx.CustomerID == id
	})
	if removed := len(txs) - len(kept); removed > 0 {
		if err := s.transactions.Save(ctx, kept); err != nil {
			return true, err
		}
		slog.Debug("Removed customer transactions", "customer_id", id, "count", removed)
	}
	return true, nil
}

// AllTransactions returns every transaction in insertion order.
func (s *Store) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.View(ctx, &s.mu)
}

// Transactions returns the transactions of one customer, newest first.
func (s *Store) Transactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	all, err := s.transactions.View(ctx, &s.mu)
	if err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0)
	for _, tx := range all {
		if tx.CustomerID == customerID {
			out = append(out, tx)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// AddTransaction records a purchase or payment and applies it to the
// customer's amount due. The customer must exist.
func (s *Store) AddTransaction(ctx context.Context, customerID string, txType models.TransactionType, amount decimal.Decimal, notes string) (models.Transaction, error) {
	if !txType.Valid() {
		return models.Transaction{}, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txType)
	}
	if !amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.customers.Load(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	idx := customerIndex(customers, customerID)
	if idx == -1 {
		return models.Transaction{}, fmt.Errorf("customer %s: %w", customerID, storage.ErrNotFound)
	}

	txs, err := s.transactions.Load(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Amount:     amount,
		Type:       txType,
		Notes:      notes,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.transactions.Save(ctx, append(txs, tx)); err != nil {
		return models.Transaction{}, err
	}

	due := calculator.AmountDue(customers[idx].AmountDue, []models.Transaction{tx})
	if _, err := s.update(ctx, customerID, models.CustomerPatch{AmountDue: &due}); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func customerIndex(customers []models.Customer, id string) int {
	for i := range customers {
		if customers[i].ID == id {
			return i
		}
	}
	return -1
}
