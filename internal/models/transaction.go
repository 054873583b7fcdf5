package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes purchases on credit from repayments.
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionPayment  TransactionType = "payment"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionPurchase || t == TransactionPayment
}

// Transaction is a purchase or payment recorded against a customer.
type Transaction struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Delta returns the signed change this transaction applies to a customer's
// amount due.
func (t Transaction) Delta() decimal.Decimal {
	if t.Type == TransactionPayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
