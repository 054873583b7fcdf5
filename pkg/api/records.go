// Package api defines the request and response messages of the creditline
// RPC services. Messages travel as JSON; amounts are decimal strings.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown is the tower/floor/unit decomposition of an apartment number.
type Breakdown struct {
	Tower string `json:"tower"`
	Floor string `json:"floor"`
	Unit  string `json:"unit"`
}

// Record is an apartment record as returned by the RecordService.
type Record struct {
	Id        string          `json:"id"`
	Apartment string          `json:"apartment"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Status    string          `json:"status"`
	Breakdown Breakdown       `json:"breakdown"`
}

type ListRecordsRequest struct {
	// Search filters by apartment or amount substring.
	Search string `json:"search,omitempty"`
	// SortBy is one of created_at, apartment, amount, status. Empty keeps
	// insertion order.
	SortBy     string `json:"sort_by,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

type ListRecordsResponse struct {
	Records []*Record `json:"records"`
	// Total is the sum over all stored records, not only the listed ones.
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type CreateRecordRequest struct {
	Apartment string `json:"apartment"`
	Amount    string `json:"amount"`
}

type CreateRecordResponse struct {
	Record *Record `json:"record"`
	// Existing is an earlier record for the same apartment, if any.
	Existing *Record `json:"existing,omitempty"`
}

// UpdateRecordRequest carries a partial update. Nil fields are unchanged.
type UpdateRecordRequest struct {
	Id        string  `json:"id"`
	Apartment *string `json:"apartment,omitempty"`
	Amount    *string `json:"amount,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type UpdateRecordResponse struct {
	Record *Record `json:"record"`
}

type MarkPaidRequest struct {
	Id string `json:"id"`
}

type MarkPaidResponse struct {
	Record *Record `json:"record"`
}

type DeleteRecordRequest struct {
	Id string `json:"id"`
}

type DeleteRecordResponse struct {
	Deleted bool `json:"deleted"`
}

// ReplaceRecordRequest removes the record Id and stores a new one for
// Apartment with Amount.
type ReplaceRecordRequest struct {
	Id        string `json:"id"`
	Apartment string `json:"apartment"`
	Amount    string `json:"amount"`
}

type ReplaceRecordResponse struct {
	Record          *Record `json:"record"`
	PreviousRemoved bool    `json:"previous_removed"`
}

type GetTotalRequest struct{}

type GetTotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type FindRecordRequest struct {
	Apartment string `json:"apartment"`
}

type FindRecordResponse struct {
	Record *Record `json:"record,omitempty"`
	Found  bool    `json:"found"`
}

type ParseApartmentRequest struct {
	Apartment string `json:"apartment"`
}

type ParseApartmentResponse struct {
	Breakdown Breakdown `json:"breakdown"`
	Valid     bool      `json:"valid"`
	Reason    string    `json:"reason,omitempty"`
}
