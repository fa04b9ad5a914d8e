package utils

import (
	"regexp"
	"strings"
)

var nonDigitRegexp = regexp.MustCompile(`\D`)

// NormalizePhoneNumber reduces a phone number to "+" followed by its digits.
func NormalizePhoneNumber(phone string) string {
	digitsOnly := nonDigitRegexp.ReplaceAllString(phone, "")
	if digitsOnly == "" {
		return ""
	}
	return "+" + digitsOnly
}

// NormalizeLogin lowercases emails and normalizes phone numbers.
func NormalizeLogin(login string) string {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return strings.ToLower(login)
	}
	return NormalizePhoneNumber(login)
}
