package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/authorization"
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

func member(t *testing.T, id uint, orgID uint, role authorization.Role, active bool) *identity.Profile {
	t.Helper()
	p, err := identity.ReconstructProfile(id, "auth0|member", &orgID, "Member", "member@acme.com",
		role, active, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func repoWithMember(p *identity.Profile) *mockProfileRepository {
	return &mockProfileRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*identity.Profile, error) {
			if p != nil && id == p.ID() {
				return p, nil
			}
			return nil, errors.NewNotFoundError("profile not found")
		},
	}
}

func TestListMembersUseCase_Execute(t *testing.T) {
	repo := &mockProfileRepository{
		ListByOrganizationFunc: func(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
			assert.Equal(t, uint(7), organizationID)
			assert.ElementsMatch(t, []authorization.Role{
				authorization.RoleOwner, authorization.RoleAdmin, authorization.RoleAgent,
			}, filter.Roles)
			return []*identity.Profile{member(t, 20, 7, authorization.RoleAgent, true)}, 1, nil
		},
	}
	uc := NewListMembersUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListMembersQuery{Actor: adminActor()})
	require.NoError(t, err)
	require.Len(t, result.Members, 1)
	assert.Equal(t, "agent", result.Members[0].Role)
	assert.Equal(t, int64(1), result.Total)
}

func TestListMembersUseCase_Execute_RoleFilter(t *testing.T) {
	repo := &mockProfileRepository{
		ListByOrganizationFunc: func(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
			assert.Equal(t, []authorization.Role{authorization.RoleAgent}, filter.Roles)
			return nil, 0, nil
		},
	}
	uc := NewListMembersUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListMembersQuery{Actor: ownerActor(), Role: "agent"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ListMembersQuery{Actor: ownerActor(), Role: "requester"})
	assert.True(t, errors.IsValidationError(err), "requester is not a staff role filter")
}

func TestListMembersUseCase_Execute_AgentForbidden(t *testing.T) {
	uc := NewListMembersUseCase(&mockProfileRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListMembersQuery{Actor: agentActor()})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListCustomersUseCase_Execute(t *testing.T) {
	repo := &mockProfileRepository{
		ListByOrganizationFunc: func(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
			assert.Equal(t, []authorization.Role{authorization.RoleRequester}, filter.Roles)
			return []*identity.Profile{member(t, 30, 7, authorization.RoleRequester, true)}, 1, nil
		},
	}
	uc := NewListCustomersUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListCustomersQuery{Actor: adminActor()})
	require.NoError(t, err)
	require.Len(t, result.Customers, 1)
	assert.Equal(t, "requester", result.Customers[0].Role)
}

func TestUpdateMemberRoleUseCase_Execute(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleAgent, true)

	updated := false
	repo := repoWithMember(target)
	repo.UpdateFunc = func(ctx context.Context, p *identity.Profile) error {
		updated = true
		return nil
	}
	uc := NewUpdateMemberRoleUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
		Role:      "admin",
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "admin", result.Member.Role)
}

func TestUpdateMemberRoleUseCase_Execute_OwnRole(t *testing.T) {
	uc := NewUpdateMemberRoleUseCase(&mockProfileRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     ownerActor(),
		ProfileID: 10,
		Role:      "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateMemberRoleUseCase_Execute_AdminCannotManageAdmin(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleAdmin, true)
	uc := NewUpdateMemberRoleUseCase(repoWithMember(target), &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     adminActor(),
		ProfileID: 20,
		Role:      "agent",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateMemberRoleUseCase_Execute_LastOwnerGuard(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleOwner, true)
	repo := repoWithMember(target)
	repo.CountByRoleFunc = func(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
		return 1, nil
	}
	uc := NewUpdateMemberRoleUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
		Role:      "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUpdateMemberRoleUseCase_Execute_DemoteCoOwner(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleOwner, true)
	repo := repoWithMember(target)
	repo.CountByRoleFunc = func(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
		return 2, nil
	}
	uc := NewUpdateMemberRoleUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
		Role:      "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Member.Role)
}

func TestUpdateMemberRoleUseCase_Execute_CrossOrgHidden(t *testing.T) {
	target := member(t, 20, 99, authorization.RoleAgent, true)
	uc := NewUpdateMemberRoleUseCase(repoWithMember(target), &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateMemberRoleCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
		Role:      "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeactivateMemberUseCase_Execute(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleAgent, true)

	var updated *identity.Profile
	repo := repoWithMember(target)
	repo.UpdateFunc = func(ctx context.Context, p *identity.Profile) error {
		updated = p
		return nil
	}
	uc := NewDeactivateMemberUseCase(repo, &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), SetMemberStatusCommand{
		Actor:     adminActor(),
		ProfileID: 20,
	}))
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())
}

func TestDeactivateMemberUseCase_Execute_Self(t *testing.T) {
	uc := NewDeactivateMemberUseCase(&mockProfileRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), SetMemberStatusCommand{
		Actor:     adminActor(),
		ProfileID: 11,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeactivateMemberUseCase_Execute_LastOwnerGuard(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleOwner, true)
	repo := repoWithMember(target)
	repo.CountByRoleFunc = func(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
		return 1, nil
	}
	uc := NewDeactivateMemberUseCase(repo, &mockLogger{})

	err := uc.Execute(context.Background(), SetMemberStatusCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestReactivateMemberUseCase_Execute(t *testing.T) {
	target := member(t, 20, 7, authorization.RoleAgent, false)

	var updated *identity.Profile
	repo := repoWithMember(target)
	repo.UpdateFunc = func(ctx context.Context, p *identity.Profile) error {
		updated = p
		return nil
	}
	uc := NewReactivateMemberUseCase(repo, &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), SetMemberStatusCommand{
		Actor:     ownerActor(),
		ProfileID: 20,
	}))
	require.NotNil(t, updated)
	assert.True(t, updated.IsActive())
}

func TestUpdateOrganizationUseCase_Execute(t *testing.T) {
	repo := &mockOrganizationRepository{}
	uc := NewUpdateOrganizationUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
		Actor: ownerActor(),
		Name:  "Acme Global Support",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Global Support", result.Name)
	assert.Equal(t, "acme-global-support", result.Slug)
}

func TestUpdateOrganizationUseCase_Execute_SameNameKeepsSlug(t *testing.T) {
	checks := 0
	repo := &mockOrganizationRepository{
		SlugExistsFunc: func(ctx context.Context, slug string) (bool, error) {
			checks++
			return false, nil
		},
	}
	uc := NewUpdateOrganizationUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
		Actor: ownerActor(),
		Name:  "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", result.Slug)
	assert.Zero(t, checks, "name mapping back to the current slug skips availability checks")
}

func TestUpdateOrganizationUseCase_Execute_AdminForbidden(t *testing.T) {
	uc := NewUpdateOrganizationUseCase(&mockOrganizationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
		Actor: adminActor(),
		Name:  "New Name",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
