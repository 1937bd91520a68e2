package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func codedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	code := "TC-M4P7QW2H"
	creator := uint(10)
	tk, err := ticket.ReconstructTicket(42, 7, "Printer broken", "desc", "", vo.StatusOpen,
		vo.PriorityMedium, &creator, nil, &code, nil, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func ticketRepoWith(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		FindByTicketCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
			if tk != nil && tk.TicketCode() != nil && code == *tk.TicketCode() {
				return tk, nil
			}
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
}

func TestCustomerLoginUseCase_Execute_FirstLoginCreatesProfile(t *testing.T) {
	tk := codedTicket(t)

	var saved *identity.Profile
	profileRepo := &mockProfileRepository{
		FindByTicketCredentialFunc: func(ctx context.Context, code, name string) (*identity.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			saved = p
			return p.SetID(5)
		},
	}
	uc := NewCustomerLoginUseCase(ticketRepoWith(tk), profileRepo, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: " tc-m4p7qw2h ",
		FullName:   "  Dana   JONES ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, uint(7), result.OrganizationID)
	assert.Equal(t, uint(42), result.TicketID)

	require.NotNil(t, saved)
	assert.Equal(t, authorization.RoleRequester, saved.Role())
	require.NotNil(t, saved.TicketCode())
	assert.Equal(t, "TC-M4P7QW2H", *saved.TicketCode())
	assert.Contains(t, saved.Subject(), "cus_")
}

func TestCustomerLoginUseCase_Execute_RepeatLoginReusesProfile(t *testing.T) {
	tk := codedTicket(t)

	orgID := uint(7)
	code := "TC-M4P7QW2H"
	existing, err := identity.ReconstructProfile(5, "cus_abc", &orgID, "Dana Jones", "",
		authorization.RoleRequester, true, &code, time.Now(), time.Now())
	require.NoError(t, err)

	saveCalls := 0
	profileRepo := &mockProfileRepository{
		FindByTicketCredentialFunc: func(ctx context.Context, c, name string) (*identity.Profile, error) {
			assert.Equal(t, "TC-M4P7QW2H", c)
			assert.Equal(t, "dana jones", name)
			return existing, nil
		},
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			saveCalls++
			return nil
		},
	}
	uc := NewCustomerLoginUseCase(ticketRepoWith(tk), profileRepo, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	result, lerr := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: "TC-M4P7QW2H",
		FullName:   "Dana Jones",
	})
	require.NoError(t, lerr)
	assert.Equal(t, uint(5), result.ProfileID)
	assert.Zero(t, saveCalls, "repeat login must not create a second profile")
}

func TestCustomerLoginUseCase_Execute_ConcurrentFirstLoginConverges(t *testing.T) {
	tk := codedTicket(t)

	orgID := uint(7)
	code := "TC-M4P7QW2H"
	winner, err := identity.ReconstructProfile(9, "cus_winner", &orgID, "Dana Jones", "",
		authorization.RoleRequester, true, &code, time.Now(), time.Now())
	require.NoError(t, err)

	lookups := 0
	profileRepo := &mockProfileRepository{
		FindByTicketCredentialFunc: func(ctx context.Context, c, name string) (*identity.Profile, error) {
			lookups++
			if lookups == 1 {
				return nil, errors.NewNotFoundError("profile not found")
			}
			return winner, nil
		},
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			return fmt.Errorf("Error 1062: Duplicate entry for key 'profiles.idx_ticket_credential'")
		},
	}
	uc := NewCustomerLoginUseCase(ticketRepoWith(tk), profileRepo, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	result, lerr := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: "TC-M4P7QW2H",
		FullName:   "Dana Jones",
	})
	require.NoError(t, lerr)
	assert.Equal(t, uint(9), result.ProfileID, "loser converges on the winner's profile")
}

func TestCustomerLoginUseCase_Execute_UnknownCode(t *testing.T) {
	uc := NewCustomerLoginUseCase(ticketRepoWith(nil), &mockProfileRepository{}, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: "TC-NOPE",
		FullName:   "Dana Jones",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.Equal(t, errors.ErrorTypeInvalidCode, appErr.Type)
}

func TestCustomerLoginUseCase_Execute_StoreOutageIsTransient(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByTicketCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
			return nil, fmt.Errorf("failed to find ticket: %w", context.DeadlineExceeded)
		},
	}
	uc := NewCustomerLoginUseCase(ticketRepo, &mockProfileRepository{}, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: "TC-M4P7QW2H",
		FullName:   "Dana Jones",
	})
	require.Error(t, err)
	assert.True(t, errors.IsTransientError(err), "store outage must surface as retryable, not as a bad code")
	assert.Equal(t, 503, errors.GetAppError(err).Code)
}

func TestCustomerLoginUseCase_Execute_DeactivatedProfile(t *testing.T) {
	tk := codedTicket(t)

	orgID := uint(7)
	code := "TC-M4P7QW2H"
	inactive, err := identity.ReconstructProfile(5, "cus_abc", &orgID, "Dana Jones", "",
		authorization.RoleRequester, false, &code, time.Now(), time.Now())
	require.NoError(t, err)

	profileRepo := &mockProfileRepository{
		FindByTicketCredentialFunc: func(ctx context.Context, c, name string) (*identity.Profile, error) {
			return inactive, nil
		},
	}
	uc := NewCustomerLoginUseCase(ticketRepoWith(tk), profileRepo, &mockTokenIssuer{}, &mockTransactor{}, &mockLogger{})

	_, lerr := uc.Execute(context.Background(), CustomerLoginCommand{
		TicketCode: "TC-M4P7QW2H",
		FullName:   "Dana Jones",
	})
	assert.Error(t, lerr)
}
