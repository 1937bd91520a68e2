package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func TestJoinByTicketUseCase_Execute(t *testing.T) {
	tk := codedTicket(t)

	var saved *identity.Profile
	profileRepo := notFoundProfileRepo()
	profileRepo.SaveFunc = func(ctx context.Context, p *identity.Profile) error {
		saved = p
		return p.SetID(5)
	}

	uc := NewJoinByTicketUseCase(ticketRepoWith(tk), profileRepo, &mockTransactor{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), JoinByTicketCommand{
		Subject:    "auth0|carol",
		Email:      "carol@example.com",
		FullName:   "Carol",
		TicketCode: " tc-m4p7qw2h ",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.OrganizationID)
	assert.Equal(t, uint(42), result.TicketID)
	require.NotNil(t, saved)
	assert.Equal(t, authorization.RoleRequester, saved.Role())
	require.NotNil(t, saved.TicketCode())
	assert.Equal(t, "TC-M4P7QW2H", *saved.TicketCode())
}

func TestJoinByTicketUseCase_Execute_UnknownCode(t *testing.T) {
	uc := NewJoinByTicketUseCase(ticketRepoWith(nil), notFoundProfileRepo(), &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), JoinByTicketCommand{
		Subject:    "auth0|carol",
		TicketCode: "TC-NOPE",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.Equal(t, errors.ErrorTypeInvalidCode, appErr.Type)
}

func TestJoinByTicketUseCase_Execute_RejoinSameCodeIsNoOp(t *testing.T) {
	tk := codedTicket(t)

	orgID := uint(7)
	code := "TC-M4P7QW2H"
	bound, err := identity.ReconstructProfile(5, "auth0|carol", &orgID, "Carol", "carol@example.com",
		authorization.RoleRequester, true, &code, time.Now(), time.Now())
	require.NoError(t, err)

	writes := 0
	profileRepo := &mockProfileRepository{
		FindBySubjectFunc: func(ctx context.Context, subject string) (*identity.Profile, error) {
			return bound, nil
		},
		SaveFunc:   func(ctx context.Context, p *identity.Profile) error { writes++; return nil },
		UpdateFunc: func(ctx context.Context, p *identity.Profile) error { writes++; return nil },
	}
	uc := NewJoinByTicketUseCase(ticketRepoWith(tk), profileRepo, &mockTransactor{}, &mockLogger{})

	result, jerr := uc.Execute(context.Background(), JoinByTicketCommand{
		Subject:    "auth0|carol",
		TicketCode: "TC-M4P7QW2H",
	})
	require.NoError(t, jerr)
	assert.Equal(t, uint(5), result.ProfileID)
	assert.Zero(t, writes)
}

func TestJoinByTicketUseCase_Execute_BoundElsewhereConflicts(t *testing.T) {
	tk := codedTicket(t)

	otherOrg := uint(99)
	bound, err := identity.ReconstructProfile(5, "auth0|carol", &otherOrg, "Carol", "carol@example.com",
		authorization.RoleRequester, true, nil, time.Now(), time.Now())
	require.NoError(t, err)

	profileRepo := &mockProfileRepository{
		FindBySubjectFunc: func(ctx context.Context, subject string) (*identity.Profile, error) {
			return bound, nil
		},
	}
	uc := NewJoinByTicketUseCase(ticketRepoWith(tk), profileRepo, &mockTransactor{}, &mockLogger{})

	_, jerr := uc.Execute(context.Background(), JoinByTicketCommand{
		Subject:    "auth0|carol",
		TicketCode: "TC-M4P7QW2H",
	})
	require.Error(t, jerr)
	assert.True(t, errors.IsConflictError(jerr))
}

func TestJoinByTicketUseCase_Execute_ConcurrentJoinConverges(t *testing.T) {
	tk := codedTicket(t)

	orgID := uint(7)
	code := "TC-M4P7QW2H"
	winner, err := identity.ReconstructProfile(9, "auth0|carol", &orgID, "Carol", "carol@example.com",
		authorization.RoleRequester, true, &code, time.Now(), time.Now())
	require.NoError(t, err)

	lookups := 0
	profileRepo := &mockProfileRepository{
		FindBySubjectFunc: func(ctx context.Context, subject string) (*identity.Profile, error) {
			lookups++
			if lookups == 1 {
				return nil, errors.NewNotFoundError("profile not found")
			}
			return winner, nil
		},
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			return fmt.Errorf("Error 1062: Duplicate entry for key 'profiles.idx_subject'")
		},
	}
	uc := NewJoinByTicketUseCase(ticketRepoWith(tk), profileRepo, &mockTransactor{}, &mockLogger{})

	result, jerr := uc.Execute(context.Background(), JoinByTicketCommand{
		Subject:    "auth0|carol",
		TicketCode: "TC-M4P7QW2H",
	})
	require.NoError(t, jerr)
	assert.Equal(t, uint(9), result.ProfileID)
}
