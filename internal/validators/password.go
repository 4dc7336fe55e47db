// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

const (
	passwordMinLength = 8
	passwordMaxLength = 25
	passwordSymbols   = "@$!%*#?&"
)

// IsStrongPassword reports whether password satisfies the password policy:
// 8 to 25 characters drawn only from [A-Za-z0-9@$!%*#?&], with at least one
// lowercase letter, one uppercase letter, one digit and one symbol.
func IsStrongPassword(password string) bool {
	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.IndexByte(passwordSymbols, c) >= 0:
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}
