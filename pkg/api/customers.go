package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a resident with a running balance.
type Customer struct {
	Id              string          `json:"id"`
	Name            string          `json:"name"`
	ApartmentNumber string          `json:"apartment_number"`
	PhoneNumber     string          `json:"phone_number"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	// StatusLabel is Paid, Due or Overdue; StatusClass is the matching
	// badge class.
	StatusLabel string    `json:"status_label"`
	StatusClass string    `json:"status_class"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Transaction struct {
	Id         string          `json:"id"`
	CustomerId string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ListCustomersRequest struct{}

type ListCustomersResponse struct {
	Customers []*Customer `json:"customers"`
}

type GetCustomerRequest struct {
	Id string `json:"id"`
}

type GetCustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type CreateCustomerRequest struct {
	Name            string `json:"name"`
	ApartmentNumber string `json:"apartment_number"`
	PhoneNumber     string `json:"phone_number"`
	// AmountDue is the opening balance; empty means zero.
	AmountDue string `json:"amount_due,omitempty"`
}

type CreateCustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type UpdateCustomerRequest struct {
	Id              string  `json:"id"`
	Name            *string `json:"name,omitempty"`
	ApartmentNumber *string `json:"apartment_number,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	AmountDue       *string `json:"amount_due,omitempty"`
}

type UpdateCustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type DeleteCustomerRequest struct {
	Id string `json:"id"`
}

type DeleteCustomerResponse struct {
	Deleted bool `json:"deleted"`
}

type ListTransactionsRequest struct {
	CustomerId string `json:"customer_id"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type AddTransactionRequest struct {
	CustomerId string `json:"customer_id"`
	Amount     string `json:"amount"`
	// Type is purchase or payment.
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

type AddTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
	Customer    *Customer    `json:"customer"`
}

type SendReminderRequest struct {
	CustomerId string `json:"customer_id"`
	// Message is appended to the standard reminder text.
	Message string `json:"message,omitempty"`
}

type SendReminderResponse struct {
	Sent    bool   `json:"sent"`
	Preview string `json:"preview"`
}
