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

type ChangePriorityCommand struct {
	Actor       common.Actor
	TicketID    uint
	NewPriority string
}

type ChangePriorityResult struct {
	TicketID    uint
	OldPriority string
	NewPriority string
	UpdatedAt   time.Time
}

type ChangePriorityUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewChangePriorityUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTicketChangePriority) {
		return nil, errors.NewForbiddenError("not allowed to change ticket priority")
	}

	newPriority, err := vo.NewPriority(cmd.NewPriority)
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

	oldPriority := t.Priority()
	if err := t.ChangePriority(newPriority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if oldPriority != newPriority {
		txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return errors.NewPersistenceError(err, "failed to update ticket")
			}

			actorID := cmd.Actor.ProfileID
			oldVal := oldPriority.String()
			newVal := newPriority.String()
			activity, err := ticket.NewActivity(t.ID(), &actorID, constants.ActivityPriorityChanged, &oldVal, &newVal)
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
	}

	return &ChangePriorityResult{
		TicketID:    t.ID(),
		OldPriority: oldPriority.String(),
		NewPriority: t.Priority().String(),
		UpdatedAt:   t.UpdatedAt(),
	}, nil
}
