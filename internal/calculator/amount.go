// Package calculator holds the arithmetic of the ledger: parsing amounts,
// summing them and classifying balances.
package calculator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/models"
)

// ErrInvalidAmount is wrapped by every error returned from ParseAmount and
// ValidateAmount.
var ErrInvalidAmount = errors.New("invalid amount")

// maxExponent bounds the exponent ParseAmountLenient accepts. Larger
// exponents would expand into numbers with millions of digits.
const maxExponent = 15

var (
	// leadingNumber matches the longest numeric prefix, the way a
	// parse-float-or-zero routine reads input.
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?`)
	strictNumber  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParseAmountLenient converts s to a non-negative amount.
// It reads the longest leading number ("12abc" is 12) and returns zero for
// anything it cannot read, for negative values and for exponents beyond
// maxExponent. It never fails.
func ParseAmountLenient(s string) decimal.Decimal {
	m := leadingNumber.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero
	}
	if exp := m[2]; exp != "" {
		n, err := strconv.Atoi(exp)
		if err != nil || n > maxExponent || n < -maxExponent {
			return decimal.Zero
		}
	}
	num := strings.TrimSuffix(strings.TrimPrefix(m[0], "+"), ".")
	d, err := decimal.NewFromString(num)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmount is the strict parser for amounts typed in by users: a plain
// non-negative decimal number with no sign or exponent. Zero is allowed.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	if !strictNumber.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return d, nil
}

// ValidateAmount is the strict check for amounts typed in by users: a plain
// positive decimal number.
func ValidateAmount(s string) error {
	d, err := ParseAmount(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	return nil
}

// Sum adds up amounts. The sum of nothing is zero.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// SumRecords adds up the Amount of every record.
func SumRecords(records []models.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// AmountDue replays transactions onto an opening balance.
func AmountDue(opening decimal.Decimal, txs []models.Transaction) decimal.Decimal {
	due := opening
	for _, tx := range txs {
		due = due.Add(tx.Delta())
	}
	return due
}
