package calculator

import "github.com/shopspring/decimal"

// OverdueThreshold is the balance above which a customer is overdue.
var OverdueThreshold = decimal.NewFromInt(5000)

// DueStatus classifies an outstanding balance.
type DueStatus int

const (
	StatusPaid DueStatus = iota
	StatusDue
	StatusOverdue
)

// StatusOf classifies amountDue: zero is paid, above OverdueThreshold is
// overdue, anything else is due.
func StatusOf(amountDue decimal.Decimal) DueStatus {
	switch {
	case amountDue.IsZero():
		return StatusPaid
	case amountDue.GreaterThan(OverdueThreshold):
		return StatusOverdue
	default:
		return StatusDue
	}
}

// Label returns the human readable name of the status.
func (s DueStatus) Label() string {
	switch s {
	case StatusPaid:
		return "Paid"
	case StatusOverdue:
		return "Overdue"
	default:
		return "Due"
	}
}

// Class returns the CSS class the frontend uses for the status badge.
func (s DueStatus) Class() string {
	switch s {
	case StatusPaid:
		return "status-paid"
	case StatusOverdue:
		return "status-overdue"
	default:
		return "status-due"
	}
}
