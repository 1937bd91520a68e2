package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor       common.Actor
	TicketID    uint
	Title       string
	Description string
	Category    string
	Tags        []string
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTicketEdit) {
		return nil, errors.NewForbiddenError("not allowed to edit tickets")
	}

	scope, err := cmd.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByIDInScope(ctx, cmd.TicketID, scope)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewPersistenceError(err, "failed to load ticket")
	}

	oldTitle := t.Title()
	if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.Category, cmd.Tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewPersistenceError(err, "failed to update ticket")
		}

		actorID := cmd.Actor.ProfileID
		newTitle := t.Title()
		activity, err := ticket.NewActivity(t.ID(), &actorID, constants.ActivityUpdated, &oldTitle, &newTitle)
		if err != nil {
			return errors.NewInternalError("failed to record activity")
		}
		if err := uc.activityRepo.Append(txCtx, activity); err != nil {
			uc.logger.Errorw("failed to append activity", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewPersistenceError(err, "failed to record activity")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
