// Package address normalizes loosely formatted US address fields into the
// shape the SkipEngine API expects.
package address

import (
	"strings"

	"skiptrace/internal/skiptrace/transport"
)

// ExtractZip5 returns the leading five digits of a ZIP or ZIP+4 value.
// Input without a leading 5-digit run is returned unchanged.
func ExtractZip5(raw string) string {
	if raw == "" {
		return ""
	}
	if len(raw) < 5 {
		return raw
	}
	for i := 0; i < 5; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return raw
		}
	}
	return raw[:5]
}

// NormalizeState maps a free-form state value to its 2-letter code.
//
// Resolution order, first match wins: empty input, an existing code, an exact
// full name, a full name containing the input (table order breaks ties), and
// finally the first two characters uppercased.
func NormalizeState(raw string) string {
	if raw == "" {
		return ""
	}

	if len(raw) == 2 {
		if code := strings.ToUpper(raw); IsCode(code) {
			return code
		}
	}

	lower := strings.ToLower(raw)
	for _, s := range states {
		if s.name == lower {
			return s.code
		}
	}

	for _, s := range states {
		if strings.Contains(s.name, lower) {
			return s.code
		}
	}

	if r := []rune(raw); len(r) >= 2 {
		return strings.ToUpper(string(r[:2]))
	}
	return raw
}

// Normalize derives the normalized state and ZIP for a contact.
func Normalize(c transport.Contact) transport.NormalizedAddress {
	return transport.NormalizedAddress{
		StateCode: NormalizeState(c.State),
		Zip5:      ExtractZip5(c.Zip),
	}
}
