package customers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/mmynk/creditline/internal/apartment"
	"github.com/mmynk/creditline/internal/models"
)

// ErrInvalidForm is matched by every *FormError.
var ErrInvalidForm = errors.New("invalid customer form")

// PhoneLength is the number of digits in a phone number.
const PhoneLength = 10

// FormError maps form field names to a message for each failed field.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrInvalidForm) match.
func (e *FormError) Is(target error) bool {
	return target == ErrInvalidForm
}

// ValidateForm checks the fields a user enters when adding or editing a
// customer. It returns a *FormError listing every failed field.
func ValidateForm(form models.CustomerForm) error {
	fields := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		fields["name"] = "Name is required"
	}

	if err := apartment.Validate(form.ApartmentNumber); err != nil {
		if strings.TrimSpace(form.ApartmentNumber) == "" {
			fields["apartment_number"] = "Apartment number is required"
		} else {
			fields["apartment_number"] = fmt.Sprintf("Apartment number must be %d digits", apartment.Length)
		}
	}

	switch {
	case strings.TrimSpace(form.PhoneNumber) == "":
		fields["phone_number"] = "Phone number is required"
	case !isPhone(form.PhoneNumber):
		fields["phone_number"] = fmt.Sprintf("Phone number must be %d digits", PhoneLength)
	}

	if form.AmountDue.IsNegative() {
		fields["amount_due"] = "Amount due cannot be negative"
	}

	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}
	return nil
}

func isPhone(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RandomPhone returns a well-formed 10-digit mobile number starting with 9.
// It is used to generate demo data.
func RandomPhone(r *rand.Rand) string {
	var b strings.Builder
	b.Grow(PhoneLength)
	b.WriteByte('9')
	for range PhoneLength - 1 {
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return b.String()
}
