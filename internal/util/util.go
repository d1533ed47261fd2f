// Package util normalizes the contact identifiers used as lookup and quota keys.
package util

import "strings"

const moroccoCountryCode = "212"

// NormalizePhone reduces a Moroccan number to its national form, so "06 12-34.56 78",
// "+212 6 12 34 56 78" and "00212612345678" all become "0612345678".
// Numbers without the 212 country code keep their digits only.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	digits.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()

	international := strings.HasPrefix(strings.TrimSpace(phone), "+")
	switch {
	case international && strings.HasPrefix(normalized, moroccoCountryCode):
		return "0" + strings.TrimPrefix(normalized, moroccoCountryCode)
	case strings.HasPrefix(normalized, "00"+moroccoCountryCode):
		return "0" + strings.TrimPrefix(normalized, "00"+moroccoCountryCode)
	case len(normalized) == len(moroccoCountryCode)+9 && strings.HasPrefix(normalized, moroccoCountryCode):
		return "0" + strings.TrimPrefix(normalized, moroccoCountryCode)
	}

	return normalized
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
