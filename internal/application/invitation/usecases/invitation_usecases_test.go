package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

func ownerActor() common.Actor {
	return common.Actor{ProfileID: 10, OrganizationID: 7, Role: authorization.RoleOwner}
}

func adminActor() common.Actor {
	return common.Actor{ProfileID: 11, OrganizationID: 7, Role: authorization.RoleAdmin}
}

func agentActor() common.Actor {
	return common.Actor{ProfileID: 12, OrganizationID: 7, Role: authorization.RoleAgent}
}

func TestCreateInvitationUseCase_Execute(t *testing.T) {
	var saved *invitation.Invitation
	repo := &mockInvitationRepository{
		SaveFunc: func(ctx context.Context, inv *invitation.Invitation) error {
			saved = inv
			return inv.SetID(3)
		},
	}
	uc := NewCreateInvitationUseCase(repo, 0, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateInvitationCommand{
		Actor: ownerActor(),
		Email: "Bob@Acme.com",
		Role:  "agent",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), result.Invitation.ID)
	assert.Equal(t, "bob@acme.com", result.Invitation.Email)
	assert.Equal(t, "agent", result.Invitation.Role)
	assert.Equal(t, "pending", result.Invitation.Status)
	assert.Contains(t, result.Invitation.Token, "INV-")

	require.NotNil(t, saved)
	expected := biztime.NowUTC().Add(invitation.DefaultExpiryDays * 24 * time.Hour)
	assert.WithinDuration(t, expected, saved.ExpiresAt(), time.Minute)
}

func TestCreateInvitationUseCase_Execute_RoleGrantRules(t *testing.T) {
	tests := []struct {
		name    string
		actor   common.Actor
		role    string
		wantErr bool
	}{
		{"owner grants admin", ownerActor(), "admin", false},
		{"owner grants agent", ownerActor(), "agent", false},
		{"admin grants agent", adminActor(), "agent", false},
		{"admin cannot grant admin", adminActor(), "admin", true},
		{"nobody grants owner", ownerActor(), "owner", true},
		{"unknown role rejected", ownerActor(), "superuser", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateInvitationUseCase(&mockInvitationRepository{}, 7, &mockLogger{})
			_, err := uc.Execute(context.Background(), CreateInvitationCommand{
				Actor: tt.actor,
				Email: "bob@acme.com",
				Role:  tt.role,
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateInvitationUseCase_Execute_AgentForbidden(t *testing.T) {
	uc := NewCreateInvitationUseCase(&mockInvitationRepository{}, 7, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateInvitationCommand{
		Actor: agentActor(),
		Email: "bob@acme.com",
		Role:  "agent",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateInvitationUseCase_Execute_TokenCollisionRetries(t *testing.T) {
	saves := 0
	repo := &mockInvitationRepository{
		SaveFunc: func(ctx context.Context, inv *invitation.Invitation) error {
			saves++
			if saves == 1 {
				return fmt.Errorf("Error 1062: Duplicate entry for key 'invitations.idx_token'")
			}
			return inv.SetID(3)
		},
	}
	uc := NewCreateInvitationUseCase(repo, 7, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateInvitationCommand{
		Actor: ownerActor(),
		Email: "bob@acme.com",
		Role:  "agent",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saves)
	assert.NotEmpty(t, result.Invitation.Token)
}

func TestListInvitationsUseCase_Execute(t *testing.T) {
	inv, err := invitation.ReconstructInvitation(1, 7, "bob@acme.com", authorization.RoleAgent, 10,
		"INV-ABCDEFGHJK", biztime.NowUTC().Add(24*time.Hour), invitation.StatusPending, biztime.NowUTC())
	require.NoError(t, err)

	repo := &mockInvitationRepository{
		ListByOrganizationFunc: func(ctx context.Context, organizationID uint, filter invitation.ListFilter) ([]*invitation.Invitation, int64, error) {
			assert.Equal(t, uint(7), organizationID)
			assert.Equal(t, invitation.StatusPending, filter.Status)
			return []*invitation.Invitation{inv}, 1, nil
		},
	}
	uc := NewListInvitationsUseCase(repo, &mockLogger{})

	result, lerr := uc.Execute(context.Background(), ListInvitationsQuery{
		Actor:  adminActor(),
		Status: "pending",
	})
	require.NoError(t, lerr)
	require.Len(t, result.Invitations, 1)
	assert.Equal(t, "bob@acme.com", result.Invitations[0].Email)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestListInvitationsUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewListInvitationsUseCase(&mockInvitationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListInvitationsQuery{
		Actor:  adminActor(),
		Status: "bogus",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListInvitationsUseCase_Execute_AgentForbidden(t *testing.T) {
	uc := NewListInvitationsUseCase(&mockInvitationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListInvitationsQuery{Actor: agentActor()})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestRevokeInvitationUseCase_Execute(t *testing.T) {
	inv, err := invitation.ReconstructInvitation(3, 7, "bob@acme.com", authorization.RoleAgent, 10,
		"INV-ABCDEFGHJK", biztime.NowUTC().Add(24*time.Hour), invitation.StatusPending, biztime.NowUTC())
	require.NoError(t, err)

	revoked := false
	repo := &mockInvitationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*invitation.Invitation, error) {
			return inv, nil
		},
		MarkRevokedFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(3), id)
			revoked = true
			return nil
		},
	}
	uc := NewRevokeInvitationUseCase(repo, &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), RevokeInvitationCommand{
		Actor:        ownerActor(),
		InvitationID: 3,
	}))
	assert.True(t, revoked)
}

func TestRevokeInvitationUseCase_Execute_AcceptedConflicts(t *testing.T) {
	inv, err := invitation.ReconstructInvitation(3, 7, "bob@acme.com", authorization.RoleAgent, 10,
		"INV-ABCDEFGHJK", biztime.NowUTC().Add(24*time.Hour), invitation.StatusAccepted, biztime.NowUTC())
	require.NoError(t, err)

	repo := &mockInvitationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*invitation.Invitation, error) {
			return inv, nil
		},
	}
	uc := NewRevokeInvitationUseCase(repo, &mockLogger{})

	rerr := uc.Execute(context.Background(), RevokeInvitationCommand{
		Actor:        ownerActor(),
		InvitationID: 3,
	})
	require.Error(t, rerr)
	assert.True(t, errors.IsConflictError(rerr))
}

func TestRevokeInvitationUseCase_Execute_CrossOrgHidden(t *testing.T) {
	inv, err := invitation.ReconstructInvitation(3, 99, "bob@other.com", authorization.RoleAgent, 50,
		"INV-ABCDEFGHJK", biztime.NowUTC().Add(24*time.Hour), invitation.StatusPending, biztime.NowUTC())
	require.NoError(t, err)

	repo := &mockInvitationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*invitation.Invitation, error) {
			return inv, nil
		},
	}
	uc := NewRevokeInvitationUseCase(repo, &mockLogger{})

	rerr := uc.Execute(context.Background(), RevokeInvitationCommand{
		Actor:        ownerActor(),
		InvitationID: 3,
	})
	require.Error(t, rerr)
	assert.True(t, errors.IsNotFoundError(rerr))
}
