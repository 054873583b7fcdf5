// Package apartment decodes and validates apartment numbers.
//
// An apartment number is a string of digits laid out as TTFFU: a two-digit
// tower, a two-digit floor and a unit. Parse is lenient and is meant for
// input that is already trusted; Validate is the strict check applied where
// users type numbers in.
package apartment

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid apartment number")

// Length is the number of digits in a well-formed apartment number.
const Length = 5

// Breakdown is the structural decomposition of an apartment number.
type Breakdown struct {
	Tower string `json:"tower"`
	Floor string `json:"floor"`
	Unit  string `json:"unit"`
}

// Parse splits s into tower [0,2), floor [2,4) and unit [4,6), counting
// characters rather than bytes. It never fails: short input yields short or
// empty parts.
func Parse(s string) Breakdown {
	r := []rune(s)
	return Breakdown{
		Tower: slice(r, 0, 2),
		Floor: slice(r, 2, 4),
		Unit:  slice(r, 4, 6),
	}
}

// slice returns r[from:to] clamped to the bounds of r.
func slice(r []rune, from, to int) string {
	if from >= len(r) {
		return ""
	}
	if to > len(r) {
		to = len(r)
	}
	return string(r[from:to])
}

// Validate reports whether s, ignoring surrounding space, is exactly Length
// ASCII digits.
func Validate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("%w: apartment number is required", ErrInvalid)
	}
	if len(s) != Length || !isDigits(s) {
		return fmt.Errorf("%w: apartment number must be %d digits", ErrInvalid, Length)
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Random returns a well-formed apartment number: tower 01-99, floor 01-99,
// unit 0-9. It is used to generate demo data.
func Random(r *rand.Rand) string {
	tower := r.IntN(99) + 1
	floor := r.IntN(99) + 1
	unit := r.IntN(10)
	return fmt.Sprintf("%02d%02d%d", tower, floor, unit)
}
