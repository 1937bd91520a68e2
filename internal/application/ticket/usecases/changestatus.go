package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor     common.Actor
	TicketID  uint
	NewStatus string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTicketChangeStatus) {
		return nil, errors.NewForbiddenError("not allowed to change ticket status")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
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

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if oldStatus != newStatus {
		txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return errors.NewPersistenceError(err, "failed to update ticket")
			}

			actorID := cmd.Actor.ProfileID
			oldVal := oldStatus.String()
			newVal := newStatus.String()
			activity, err := ticket.NewActivity(t.ID(), &actorID, constants.ActivityStatusChanged, &oldVal, &newVal)
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

		uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", newStatus)
	}

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
