package service

import (
	"skiptrace/internal/skiptrace/transport"
	"skiptrace/platform/phone"
)

// emailSlot is the only email slot consulted.
const emailSlot = "Email"

// isMobileType reports whether a SkipEngine PhoneType denotes a mobile line:
// W (wireless), C (cell) or M (mobile).
func isMobileType(phoneType string) bool {
	switch phoneType {
	case "W", "C", "M":
		return true
	default:
		return false
	}
}

// Project flattens a lookup response into a ContactResult. It never fails;
// missing levels leave fields empty.
//
// Phone slots are visited in response order and the last qualifying slot of
// each class (mobile, landline) wins.
func Project(resp *transport.LookupResponse) transport.ContactResult {
	var result transport.ContactResult
	if resp == nil || resp.Output == nil || resp.Output.Identity == nil {
		return result
	}
	identity := resp.Output.Identity

	for _, slot := range identity.Phones {
		if slot.Entry == nil || slot.Entry.Phone == "" {
			continue
		}
		formatted := phone.Dashed(slot.Entry.Phone)
		if isMobileType(slot.Entry.PhoneType) {
			result.MobilePhone = formatted
		} else {
			result.Landline = formatted
		}
	}

	if entry := identity.Emails.Get(emailSlot); entry != nil && entry.Email != "" {
		result.Email = entry.Email
	}

	return result
}
