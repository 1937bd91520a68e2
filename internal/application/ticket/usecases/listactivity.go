package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListActivityQuery struct {
	Actor    common.Actor
	TicketID uint
}

type ListActivityResult struct {
	Activities []ActivityView
}

type ListActivityUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	logger       logger.Interface
}

func NewListActivityUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	logger logger.Interface,
) *ListActivityUseCase {
	return &ListActivityUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *ListActivityUseCase) Execute(ctx context.Context, query ListActivityQuery) (*ListActivityResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !query.Actor.Can(authorization.ActionTicketViewActivity) {
		return nil, errors.NewForbiddenError("not allowed to view ticket activity")
	}

	scope, err := query.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByIDInScope(ctx, query.TicketID, scope)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewPersistenceError(err, "failed to load ticket")
	}

	activities, err := uc.activityRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list activity", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list activity")
	}

	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, toActivityView(a))
	}

	return &ListActivityResult{Activities: views}, nil
}
