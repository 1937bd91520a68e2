package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrganization(t *testing.T) {
	org, err := NewOrganization("Acme IT Support", "acme-it-support")
	require.NoError(t, err)

	assert.Equal(t, uint(0), org.ID())
	assert.Equal(t, "Acme IT Support", org.Name())
	assert.Equal(t, "acme-it-support", org.Slug())
	assert.False(t, org.CreatedAt().IsZero())
}

func TestNewOrganization_Validation(t *testing.T) {
	_, err := NewOrganization("", "slug")
	assert.Error(t, err)

	_, err = NewOrganization("Acme", "")
	assert.Error(t, err)
}

func TestOrganization_SetID(t *testing.T) {
	org, err := NewOrganization("Acme", "acme")
	require.NoError(t, err)

	require.NoError(t, org.SetID(42))
	assert.Equal(t, uint(42), org.ID())

	assert.Error(t, org.SetID(43), "ID must be settable only once")
	assert.Error(t, org.SetID(0))
}

func TestOrganization_Rename(t *testing.T) {
	org, err := ReconstructOrganization(1, "Acme", "acme", time.Now(), time.Now())
	require.NoError(t, err)

	require.NoError(t, org.Rename("Acme Global", "acme-global"))
	assert.Equal(t, "Acme Global", org.Name())
	assert.Equal(t, "acme-global", org.Slug())

	assert.Error(t, org.Rename("", "x"))
	assert.Error(t, org.Rename("x", ""))
}
