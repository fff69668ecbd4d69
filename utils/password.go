package utils

import "unicode"

// PasswordStrong reports whether a password meets the registration policy:
// at least 8 characters, containing a letter and a digit.
func PasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
