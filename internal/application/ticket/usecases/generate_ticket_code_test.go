package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

func TestGenerateTicketCodeUseCase_Execute(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	uc := NewGenerateTicketCodeUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateTicketCodeCommand{
		Actor:    testActor(authorization.RoleAdmin),
		TicketID: 5,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.TicketCode, "TC-"))
	require.NotNil(t, existing.TicketCode())
	assert.Equal(t, result.TicketCode, *existing.TicketCode())
}

func TestGenerateTicketCodeUseCase_Execute_Idempotent(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)
	require.NoError(t, existing.AttachTicketCode("TC-M4P7QW2H"))

	updateCalls := 0
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updateCalls++
			return nil
		},
	}
	uc := NewGenerateTicketCodeUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateTicketCodeCommand{
		Actor:    testActor(authorization.RoleAdmin),
		TicketID: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "TC-M4P7QW2H", result.TicketCode)
	assert.Zero(t, updateCalls, "existing code is returned without a write")
}

func TestGenerateTicketCodeUseCase_Execute_RetriesOnCollision(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)

	updateCalls := 0
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			fresh := reconstructTestTicket(t, 5, vo.StatusOpen)
			if updateCalls == 0 {
				return existing, nil
			}
			return fresh, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updateCalls++
			if updateCalls == 1 {
				return fmt.Errorf("Error 1062: Duplicate entry 'TC-XXXX' for key 'tickets.idx_tickets_code'")
			}
			return nil
		},
	}
	uc := NewGenerateTicketCodeUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateTicketCodeCommand{
		Actor:    testActor(authorization.RoleAdmin),
		TicketID: 5,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TicketCode, "TC-"))
	assert.Equal(t, 2, updateCalls)
}

func TestGenerateTicketCodeUseCase_Execute_AgentForbidden(t *testing.T) {
	uc := NewGenerateTicketCodeUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GenerateTicketCodeCommand{
		Actor:    testActor(authorization.RoleAgent),
		TicketID: 5,
	})
	assert.Error(t, err)
}
