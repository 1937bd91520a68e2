package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerifyCustomerToken(t *testing.T) {
	svc := NewJWTService("test-secret", "helpdesk", 60)

	token, expiresAt, err := svc.IssueCustomerToken("cus_abc123", "Dana Jones")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "cus_abc123", claims.Subject)
	assert.Equal(t, "Dana Jones", claims.FullName)
	assert.Equal(t, "helpdesk", claims.Issuer)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", "helpdesk", 60)
	token, _, err := svc.IssueCustomerToken("cus_abc123", "Dana Jones")
	require.NoError(t, err)

	other := NewJWTService("different-secret", "helpdesk", 60)
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "helpdesk", -1)
	token, _, err := svc.IssueCustomerToken("cus_abc123", "Dana Jones")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "helpdesk", 60)
	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
