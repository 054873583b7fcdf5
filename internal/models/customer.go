package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a resident with a running store credit balance.
type Customer struct {
	// ID is the unique identifier for the customer (UUID format).
	ID string `json:"id"`

	// Name is the display name of the customer.
	Name string `json:"name"`

	// ApartmentNumber is the 5-digit apartment number.
	ApartmentNumber string `json:"apartment_number"`

	// PhoneNumber is a 10-digit mobile number without country code.
	PhoneNumber string `json:"phone_number"`

	// AmountDue is the outstanding balance. Purchases increase it and
	// payments decrease it.
	AmountDue decimal.Decimal `json:"amount_due"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerForm holds the caller-supplied fields of a customer.
type CustomerForm struct {
	Name            string
	ApartmentNumber string
	PhoneNumber     string
	AmountDue       decimal.Decimal
}

// CustomerPatch is a partial update for a Customer.
type CustomerPatch struct {
	Name            *string
	ApartmentNumber *string
	PhoneNumber     *string
	AmountDue       *decimal.Decimal
}

// Apply merges the non-nil fields of p onto c and returns the result.
func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ApartmentNumber != nil {
		c.ApartmentNumber = *p.ApartmentNumber
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.AmountDue != nil {
		c.AmountDue = *p.AmountDue
	}
	return c
}
