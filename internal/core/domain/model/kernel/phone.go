package kernel

import (
	"fmt"
	"strings"

	"eventsupply/internal/pkg/errs"
)

const (
	phoneMinDigits = 8
	phoneMaxDigits = 15
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created through NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// Phone is a value object holding a phone number in canonical normalized form:
// country-code-prefixed digits only, no plus sign, no leading zero.
//
// All credential and notification operations key on this canonical form, so
// two numbers that normalize identically are the same subscriber as far as
// the system is concerned.
type Phone struct {
	number string
}

// NewPhone normalizes and validates a raw phone number.
//
// Normalization strips spaces, dashes, dots, parentheses, and a leading plus
// sign. The remaining string must consist of 8 to 15 digits and must not start
// with a zero (the canonical form carries the country code instead).
func NewPhone(raw string) (Phone, error) {
	normalized := normalizePhone(raw)
	if normalized == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	for _, r := range normalized {
		if r < '0' || r > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause(
				"phone",
				fmt.Errorf("%q contains a non-digit character", raw),
			)
		}
	}

	if len(normalized) < phoneMinDigits || len(normalized) > phoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", len(normalized), phoneMinDigits, phoneMaxDigits)
	}

	if normalized[0] == '0' {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q starts with a leading zero, expected country-code prefix", raw),
		)
	}

	return Phone{number: normalized}, nil
}

func normalizePhone(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	return strings.TrimPrefix(stripped, "+")
}

// String returns the canonical digit string, e.g. "96655XXXXXXX".
func (p Phone) String() string {
	return p.number
}

// IsEqual compares two phones by canonical form.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// Validate returns ErrPhoneIsNotConstructed for a zero-value Phone.
func (p Phone) Validate() error {
	if p.number == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
