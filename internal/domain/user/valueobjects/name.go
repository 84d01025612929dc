package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex requires at least two whitespace-separated tokens of two or more
// letters each, approximating a full name. Accented letters are allowed.
var nameRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ'.-]{2,}(?:\s+[a-zA-ZÀ-ÿ'.-]{2,})+$`)

// Name represents a user's full name value object
type Name struct {
	value string
}

// NewName creates a new Name value object with validation
func NewName(value string) (*Name, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return nil, fmt.Errorf("nome cannot be empty")
	}

	if len(trimmed) > 255 {
		return nil, fmt.Errorf("nome cannot exceed 255 characters")
	}

	if !nameRegex.MatchString(trimmed) {
		return nil, fmt.Errorf("nome must contain at least two names")
	}

	return &Name{value: trimmed}, nil
}

// String returns the string representation of the name
func (n *Name) String() string {
	return n.value
}

// Equals checks if two name objects are equal
func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.value == other.value
}

// FirstName returns the first token of the name.
func (n *Name) FirstName() string {
	parts := strings.Fields(n.value)
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}
