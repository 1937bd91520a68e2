// Package id generates the opaque identifiers exchanged out-of-band:
// invitation tokens, ticket codes, and auth subjects for customers that
// have no identity-provider account.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// base62 alphabet for machine-facing identifiers (auth subjects).
	base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// codeAlphabet is used for human-transcribable codes. Ambiguous glyphs
	// (0/O, 1/I/L) are excluded so codes survive being read over the phone.
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

	// DefaultLength is the default length for generated short IDs.
	DefaultLength = 12

	invitationTokenLength = 10
	ticketCodeLength      = 8
)

// Prefixes for the shareable code families.
const (
	PrefixInvitation = "INV"
	PrefixTicketCode = "TC"

	// PrefixCustomerSubject marks auth subjects minted locally for
	// ticket-code customers (Stripe-style, underscore separated).
	PrefixCustomerSubject = "cus"
)

func randomFrom(alphabet string, length int) (string, error) {
	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// Generate creates a random base62 short ID with the specified length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	return randomFrom(base62Alphabet, length)
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewInvitationToken generates an invitation token like "INV-7XK2MQ9ZRD".
// 31^10 possibilities make the token collision-resistant and unguessable
// from any attribute of the organization or invitee.
func NewInvitationToken() (string, error) {
	code, err := randomFrom(codeAlphabet, invitationTokenLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", PrefixInvitation, code), nil
}

// NewTicketCode generates a shareable ticket code like "TC-M4P7QW2H".
func NewTicketCode() (string, error) {
	code, err := randomFrom(codeAlphabet, ticketCodeLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", PrefixTicketCode, code), nil
}

// NewCustomerSubject mints an auth subject for a ticket-code customer.
func NewCustomerSubject() (string, error) {
	id, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", PrefixCustomerSubject, id), nil
}

// NormalizeCode canonicalizes a user-typed code for comparison: trimmed,
// uppercased. Codes are compared in this form everywhere.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
