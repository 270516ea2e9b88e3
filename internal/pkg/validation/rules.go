// Package validation holds field-level policies that go beyond struct
// tag validation.
package validation

import "unicode"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidatePassword enforces the account password policy: at least
// MinPasswordLength characters with at least one letter and one digit.
func ValidatePassword(password string) bool {
	if len(password) < MinPasswordLength {
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
