package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
)

// IsValidPhoneNumber checks if a string is a dialable phone number
// after formatting characters are stripped.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(NormalizePhoneNumber(phone))
}

// NormalizePhoneNumber strips spaces, dashes, dots and parentheses so
// numbers stored as "(555) 123-4567" become "5551234567". A leading
// plus sign is preserved.
func NormalizePhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	cleaned := nonDigitRegex.ReplaceAllString(phone, "")
	if plus {
		return "+" + cleaned
	}
	return cleaned
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits
// visible. Used when logging driver contact details.
func MaskPhoneNumber(phone string) string {
	cleaned := nonDigitRegex.ReplaceAllString(phone, "")
	if len(cleaned) <= 4 {
		return cleaned
	}
	return strings.Repeat("*", len(cleaned)-4) + cleaned[len(cleaned)-4:]
}

// Truncate truncates a string to the specified length and adds an
// ellipsis if needed. Transcripts can run long in log output.
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}
