package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_StripsMarkup(t *testing.T) {
	sanitizer := NewHTMLSanitizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Arepa de Queso", "Arepa de Queso"},
		{"script removed", "<script>alert(1)</script>Maria", "Maria"},
		{"tags stripped, text kept", "<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"event handler removed", `<img src=x onerror=alert(1)>hola`, "hola"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"ampersand round-trips", "arepas & queso", "arepas & queso"},
		{"quotes round-trip", `dicen "rica"`, `dicen "rica"`},
		{"empty input", "", ""},
		{"only markup collapses to empty", "<p></p>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Sanitize(tt.input))
		})
	}
}
