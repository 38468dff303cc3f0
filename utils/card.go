package utils

import "strings"

// NormalizeCardNumber strips spaces and dashes from a card number.
func NormalizeCardNumber(cardNumber string) string {
	var b strings.Builder
	for _, r := range cardNumber {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateCardNumber reports whether the normalized card number is 13 to 19
// digits, matching what the checkout form accepts.
func ValidateCardNumber(cardNumber string) bool {
	digits := NormalizeCardNumber(cardNumber)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MaskCardNumber keeps only the last four digits. The raw number is never
// persisted.
func MaskCardNumber(cardNumber string) string {
	digits := NormalizeCardNumber(cardNumber)
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
