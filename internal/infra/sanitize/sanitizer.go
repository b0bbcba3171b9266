// Package sanitize implements HTML stripping for user-supplied text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"tienda/internal/domain/service"
)

// htmlSanitizer strips all markup using bluemonday's strict policy.
type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer is the constructor for htmlSanitizer.
func NewHTMLSanitizer() service.Sanitizer {
	return &htmlSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize removes all HTML elements and attributes from the input.
// Entities escaped by the policy are unescaped back so plain text like
// "arepas & queso" round-trips unchanged.
func (s *htmlSanitizer) Sanitize(input string) string {
	cleaned := s.policy.Sanitize(input)

	return strings.TrimSpace(html.UnescapeString(cleaned))
}
