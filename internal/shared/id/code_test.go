package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitationToken(t *testing.T) {
	token, err := NewInvitationToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, "INV-"))
	assert.Len(t, token, len("INV-")+10)

	for _, r := range token[4:] {
		assert.Contains(t, codeAlphabet, string(r))
	}
}

func TestNewTicketCode(t *testing.T) {
	code, err := NewTicketCode()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "TC-"))
	assert.Equal(t, code, NormalizeCode(code), "generated codes must already be canonical")
}

func TestNewCustomerSubject(t *testing.T) {
	subject, err := NewCustomerSubject()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(subject, "cus_"))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tc-m4p7qw2h", "TC-M4P7QW2H"},
		{"  INV-7XK2MQ9ZRD  ", "INV-7XK2MQ9ZRD"},
		{"Tc-AbC", "TC-ABC"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCode(tt.input))
	}
}
