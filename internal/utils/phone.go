package utils

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultCountryCode is prepended to numbers given in national format.
const DefaultCountryCode = "54"

var (
	ErrInvalidPhone = errors.New("invalid phone number")

	digitsOnly = regexp.MustCompile(`^[0-9]{8,15}$`)
)

// NormalizePhone strips separators and returns the number in international
// digits-only form, e.g. "011 4555-1234" -> "541145551234".
func NormalizePhone(phone string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(phone)

	switch {
	case strings.HasPrefix(stripped, "+"):
		stripped = stripped[1:]
	case strings.HasPrefix(stripped, "00"):
		stripped = stripped[2:]
	case strings.HasPrefix(stripped, "0"):
		stripped = DefaultCountryCode + stripped[1:]
	case !strings.HasPrefix(stripped, DefaultCountryCode):
		stripped = DefaultCountryCode + stripped
	}

	if !digitsOnly.MatchString(stripped) {
		return "", ErrInvalidPhone
	}
	return stripped, nil
}
