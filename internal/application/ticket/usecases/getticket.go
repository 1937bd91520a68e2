package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    common.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketView, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	scope, err := query.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// An out-of-scope ticket and a nonexistent one produce the same error,
	// so existence cannot be probed across visibility boundaries.
	t, err := uc.ticketRepo.FindByIDInScope(ctx, query.TicketID, scope)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewPersistenceError(err, "failed to load ticket")
	}

	view := toTicketView(t)
	return &view, nil
}
