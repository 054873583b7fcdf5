// Package reminder composes payment reminders for customers and hands them
// to a Notifier for delivery.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/models"
)

// Reminder is a message ready for delivery to one customer.
type Reminder struct {
	CustomerID      string
	Name            string
	Phone           string
	ApartmentNumber string
	AmountDue       decimal.Decimal
	Message         string
}

// Notifier delivers reminders.
type Notifier interface {
	Send(ctx context.Context, r Reminder) error
}

// Compose builds the reminder for c. extra is appended to the standard text.
func Compose(c models.Customer, extra string) Reminder {
	msg := fmt.Sprintf(
		"Dear %s, this is a reminder that you have an outstanding balance of ₹%s at our building store. "+
			"Please arrange payment at your earliest convenience. %s",
		c.Name, FormatAmount(c.AmountDue), strings.TrimSpace(extra),
	)
	return Reminder{
		CustomerID:      c.ID,
		Name:            c.Name,
		Phone:           FormatPhone(c.PhoneNumber),
		ApartmentNumber: c.ApartmentNumber,
		AmountDue:       c.AmountDue,
		Message:         strings.TrimSpace(msg),
	}
}

// FormatPhone renders a 10-digit number as "+91 XXXXX XXXXX". Other input is
// returned unchanged.
func FormatPhone(phone string) string {
	if len(phone) != 10 {
		return phone
	}
	return fmt.Sprintf("+91 %s %s", phone[:5], phone[5:])
}

// FormatAmount renders an amount with Indian digit grouping: the last three
// digits form one group and the rest are grouped in pairs (12,34,567.5).
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().String()
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var groups []string
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		groups = append(groups, tail)
	} else {
		groups = []string{intPart}
	}

	out := strings.Join(groups, ",")
	if hasFrac {
		out += "." + frac
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// LogNotifier records reminders in the log instead of delivering them.
// It stands in for a messaging provider.
type LogNotifier struct{}

// Send logs r.
func (LogNotifier) Send(ctx context.Context, r Reminder) error {
	slog.InfoContext(ctx, "Reminder queued",
		"customer_id", r.CustomerID,
		"phone", r.Phone,
		"apartment", r.ApartmentNumber,
		"amount_due", r.AmountDue.String(),
	)
	slog.DebugContext(ctx, "Reminder message", "customer_id", r.CustomerID, "message", r.Message)
	return nil
}
