package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Acme", "acme"},
		{"spaces", "Acme IT Support", "acme-it-support"},
		{"diacritics", "Café Société", "cafe-societe"},
		{"punctuation runs", "Foo & Bar, Inc.", "foo-bar-inc"},
		{"leading trailing", "  Acme  ", "acme"},
		{"numbers", "42nd Street Helpdesk", "42nd-street-helpdesk"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestValidatePagination(t *testing.T) {
	p := ValidatePagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	p = ValidatePagination(3, 500)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PageSize)
}
