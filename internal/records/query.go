package records

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/creditline/internal/models"
)

// SortKey names a record field a listing can be ordered by.
type SortKey string

const (
	SortNone      SortKey = ""
	SortCreatedAt SortKey = "created_at"
	SortApartment SortKey = "apartment"
	SortAmount    SortKey = "amount"
	SortStatus    SortKey = "status"
)

// ParseSortKey validates a caller-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortNone, SortCreatedAt, SortApartment, SortAmount, SortStatus:
		return k, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q", s)
	}
}

// Query narrows and orders a record listing. The zero Query returns records
// unchanged, in stored order.
type Query struct {
	// Search keeps records whose apartment contains it (case-insensitive)
	// or whose amount text contains it.
	Search string

	SortBy     SortKey
	Descending bool
}

// Apply returns the records matching q, ordered by q. The input slice is
// not modified.
func (q Query) Apply(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, r := range records {
		if term == "" ||
			strings.Contains(strings.ToLower(r.Apartment), term) ||
			strings.Contains(r.Amount.String(), term) {
			out = append(out, r)
		}
	}

	cmp := q.compare()
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b models.Record) int {
		if q.Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}

func (q Query) compare() func(a, b models.Record) int {
	switch q.SortBy {
	case SortCreatedAt:
		return func(a, b models.Record) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortApartment:
		return func(a, b models.Record) int { return strings.Compare(a.Apartment, b.Apartment) }
	case SortAmount:
		return func(a, b models.Record) int { return a.Amount.Cmp(b.Amount) }
	case SortStatus:
		return func(a, b models.Record) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return nil
	}
}
