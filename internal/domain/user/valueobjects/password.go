package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	passwordSymbols   = "@$!%*?&"
)

// Password represents a plain-text password that satisfied the complexity
// policy: at least 8 characters with one lowercase letter, one uppercase
// letter, one digit and one symbol from the allowed set. Only those four
// character classes are permitted.
type Password struct {
	value string
}

// NewPassword creates a new Password value object with validation
func NewPassword(value string) (*Password, error) {
	if value == "" {
		return nil, fmt.Errorf("senha cannot be empty")
	}

	if len(value) < minPasswordLength {
		return nil, fmt.Errorf("senha must be at least %d characters", minPasswordLength)
	}

	if len(value) > maxPasswordLength {
		return nil, fmt.Errorf("senha cannot exceed %d characters", maxPasswordLength)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsDigit(r) && r <= unicode.MaxASCII:
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return nil, fmt.Errorf("senha contains an invalid character: %q", r)
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return nil, fmt.Errorf(
			"senha must contain a lowercase letter, an uppercase letter, a digit and one of %s",
			passwordSymbols,
		)
	}

	return &Password{value: value}, nil
}

// String returns the raw password value
func (p *Password) String() string {
	return p.value
}
