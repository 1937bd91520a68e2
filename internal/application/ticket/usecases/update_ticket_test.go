package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	activityRepo := &mockActivityRepository{}
	uc := NewUpdateTicketUseCase(ticketRepo, activityRepo, &mockTransactor{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:       testActor(authorization.RoleAgent),
		TicketID:    5,
		Title:       "Laptop will not boot",
		Description: "Black screen after the vendor logo",
		Category:    "hardware",
		Tags:        []string{"laptop", "boot"},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.TicketID)
	assert.Equal(t, "Laptop will not boot", existing.Title())
	assert.Equal(t, "hardware", existing.Category())
	assert.Equal(t, []string{"laptop", "boot"}, existing.Tags())

	require.Len(t, activityRepo.appended, 1)
	entry := activityRepo.appended[0]
	assert.Equal(t, constants.ActivityUpdated, entry.Action())
	assert.Equal(t, "Broken laptop", *entry.OldValue())
	assert.Equal(t, "Laptop will not boot", *entry.NewValue())
}

func TestUpdateTicketUseCase_Execute_RequesterForbidden(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockActivityRepository{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    testActor(authorization.RoleRequester),
		TicketID: 5,
		Title:    "New title",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestUpdateTicketUseCase_Execute_OutOfScopeIsNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	uc := NewUpdateTicketUseCase(ticketRepo, &mockActivityRepository{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    testActor(authorization.RoleAgent),
		TicketID: 999,
		Title:    "New title",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_EmptyTitleRejected(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	uc := NewUpdateTicketUseCase(ticketRepo, &mockActivityRepository{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    testActor(authorization.RoleAgent),
		TicketID: 5,
		Title:    "   ",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
