package utils

import "strings"

// MaskCard reduces a card number to its last four digits. Everything else
// about the raw number is discarded before persistence.
func MaskCard(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) < 4 {
		return "**** **** **** ****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
