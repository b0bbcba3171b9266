// Package util holds small stateless helpers shared across use cases.
package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cvvPattern   = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateCardNumber reports whether s is exactly 16 digits, ignoring spaces.
func ValidateCardNumber(s string) bool {
	digits := strings.ReplaceAll(s, " ", "")
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateCVV reports whether s is a 3 or 4 digit security code.
func ValidateCVV(s string) bool {
	return cvvPattern.MatchString(s)
}

// ValidateExpiry reports whether s is an MM/YY date strictly in the future.
// A card expiring in the current month is rejected.
func ValidateExpiry(s string, now time.Time) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000

	// The expiry month itself is already too late; only a later month passes.
	cutoff := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return now.Before(cutoff)
}

// MaskCardNumber keeps only the last four digits of a card number.
func MaskCardNumber(s string) string {
	digits := strings.ReplaceAll(s, " ", "")
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
