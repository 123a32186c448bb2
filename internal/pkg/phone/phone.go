// Package phone normalizes free-form phone number input into a canonical
// 10-digit subscriber number and its E.164 form.
package phone

import (
	"fmt"
	"strings"

	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// DefaultCountryCode is assumed when the input carries no country prefix.
const DefaultCountryCode = "91"

const subscriberLength = 10

// Normalize strips non-digit characters from raw, removes a leading country
// code or a single leading zero, and returns the 10-digit subscriber number
// together with its E.164 representation. Inputs that do not reduce to exactly
// 10 digits fail with apperrors.ErrInvalidPhoneFormat.
func Normalize(raw string) (subscriber, e164 string, err error) {
	return NormalizeWithCountryCode(raw, DefaultCountryCode)
}

// NormalizeWithCountryCode is Normalize with an explicit country code.
func NormalizeWithCountryCode(raw, countryCode string) (subscriber, e164 string, err error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	base := digits.String()
	switch {
	case strings.HasPrefix(base, countryCode):
		base = base[len(countryCode):]
	case strings.HasPrefix(base, "0"):
		base = base[1:]
	}

	if len(base) != subscriberLength {
		return "", "", apperrors.ErrInvalidPhoneFormat
	}

	return base, fmt.Sprintf("+%s%s", countryCode, base), nil
}
