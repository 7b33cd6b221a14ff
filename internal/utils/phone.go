package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
var nonPhoneChars = regexp.MustCompile(`[^\d+]`)
var nonDigits = regexp.MustCompile(`[^\d]`)

func IsValidPhone(phone string) bool {
	cleaned := nonPhoneChars.ReplaceAllString(phone, "")
	return phoneRegex.MatchString(cleaned)
}

// FormatPhone renders a stored phone number in E.164 form, prefixing the
// country code when the stored value is a bare national number.
func FormatPhone(phone, countryCode string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	code := strings.TrimPrefix(countryCode, "+")

	if !strings.HasPrefix(cleaned, code) {
		cleaned = code + cleaned
	}

	return "+" + cleaned
}

func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	normalized := nonPhoneChars.ReplaceAllString(phone, "")
	if !strings.HasPrefix(normalized, "+") {
		normalized = "+" + normalized
	}
	return normalized
}
