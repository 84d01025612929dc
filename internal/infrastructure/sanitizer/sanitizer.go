// Package sanitizer strips markup from user-entered text before storage.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictSanitizer removes all HTML from input strings. Ticket titles,
// descriptions and observations are plain text everywhere they are shown.
type StrictSanitizer struct {
	policy *bluemonday.Policy
}

func NewStrictSanitizer() *StrictSanitizer {
	return &StrictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *StrictSanitizer) Sanitize(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
