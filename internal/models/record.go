package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus is the payment state of an apartment record.
type RecordStatus string

const (
	StatusPending RecordStatus = "pending"
	StatusPaid    RecordStatus = "paid"
)

// Valid reports whether s is one of the known statuses.
func (s RecordStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Record is a single credit line entry for an apartment.
// Records are stored as a flat collection; several records may share an
// apartment number.
type Record struct {
	// ID is assigned by the store at insert time and never changes.
	ID string `json:"id"`

	// Apartment is the raw apartment number as entered (e.g. "36194").
	Apartment string `json:"apartment"`

	// Amount is the non-negative amount owed.
	Amount decimal.Decimal `json:"amount"`

	// CreatedAt is set once by the store at insert time.
	CreatedAt time.Time `json:"created_at"`

	// Status starts as pending and moves to paid once settled.
	Status RecordStatus `json:"status"`
}

// RecordPatch is a partial update for a Record. Nil fields are left as they
// are. ID and CreatedAt cannot be patched.
type RecordPatch struct {
	Apartment *string
	Amount    *decimal.Decimal
	Status    *RecordStatus
}

// Apply merges the non-nil fields of p onto r and returns the result.
func (p RecordPatch) Apply(r Record) Record {
	if p.Apartment != nil {
		r.Apartment = *p.Apartment
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return p.Apartment == nil && p.Amount == nil && p.Status == nil
}
