package domain

import "strings"

// MinCardDigits is the shortest card number checkout accepts. Length is the
// only check performed; there is no Luhn validation and card data is never
// stored.
const MinCardDigits = 16

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber normalizes a card number into groups of four digits
// separated by spaces. The whole value is rebuilt on every call, so partial
// input formats cleanly as the user types.
func FormatCardNumber(s string) string {
	digits := DigitsOnly(s)

	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}

	return strings.Join(groups, " ")
}

// FormatExpiry normalizes an expiry into MM/YY form, inserting the slash
// after the second digit.
func FormatExpiry(s string) string {
	digits := DigitsOnly(s)
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
