package validate

import (
	"regexp"
	"strings"
	"unicode"

	appErr "github.com/xxxsen/accountd/internal/pkg/errors"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail produces the canonical form stored and compared everywhere:
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Email(email string) []appErr.FieldViolation {
	if !emailRegex.MatchString(email) {
		return []appErr.FieldViolation{{Field: "email", Message: "must be a valid email"}}
	}
	return nil
}

func Password(plain string) []appErr.FieldViolation {
	var out []appErr.FieldViolation
	if len(plain) < 6 {
		out = append(out, appErr.FieldViolation{Field: "password", Message: "password must be at least 6 characters long"})
	}
	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range plain {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSpecial = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper || !hasSpecial {
		out = append(out, appErr.FieldViolation{
			Field:   "password",
			Message: "password must contain at least one digit, one lowercase letter, one uppercase letter, and one special character",
		})
	}
	return out
}

func Name(field, value string) []appErr.FieldViolation {
	if value == "" {
		return []appErr.FieldViolation{{Field: field, Message: field + " is required"}}
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return []appErr.FieldViolation{{Field: field, Message: field + " must contain only alphabetic characters"}}
		}
	}
	return nil
}
