// Package phone canonicalizes locally entered Indonesian phone numbers into
// international-dialable digit strings.
package phone

import (
	"errors"
	"strings"
)

// CountryCode replaces a leading "0" during normalization.
const CountryCode = "62"

// ErrInvalidPhone is returned when the input contains no digits at all.
// Callers must treat it as a blocking validation failure before any
// dispatch action proceeds.
var ErrInvalidPhone = errors.New("phone: input contains no digits")

// Normalize strips every non-digit character from raw and rewrites a leading
// "0" to the country code. Inputs that already carry the country code
// (e.g. "+62 812 ...") pass through with separators removed.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return "", ErrInvalidPhone
	}

	if strings.HasPrefix(digits, "0") {
		digits = CountryCode + digits[1:]
	}
	return digits, nil
}
