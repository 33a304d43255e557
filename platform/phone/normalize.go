// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// Dashed rewrites a bare 10-digit number as NNN-NNN-NNNN.
// Anything else is returned unchanged.
func Dashed(raw string) string {
	if len(raw) != 10 || !allDigits(raw) {
		return raw
	}
	return raw[:3] + "-" + raw[3:6] + "-" + raw[6:]
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// IsValid reports whether input parses as a valid number in the default region.
func IsValid(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(number)
}

// Mask hides all but the last 4 digits, keeping separators in place.
//
//	"555-123-4567" -> "***-***-4567"
func Mask(input string) string {
	runes := []rune(strings.TrimSpace(input))
	digits := 0
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	keep := 4
	if digits <= 4 {
		keep = 1
	}
	for i := range runes {
		if runes[i] < '0' || runes[i] > '9' {
			continue
		}
		if digits > keep {
			runes[i] = '*'
		}
		digits--
	}
	return string(runes)
}

// MaskEmail keeps the first and last character of the local part.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return email
	}
	local := []rune(email[:at])
	for i := 1; i < len(local)-1; i++ {
		local[i] = '*'
	}
	return string(local) + email[at:]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
