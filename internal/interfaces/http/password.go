package http

import "unicode"

// ValidPassword verifica la política de passwords en la frontera, antes de que
// el core los vea: mínimo 8 caracteres con al menos una mayúscula, una
// minúscula, un dígito y un carácter especial.
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
