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

type CreateTicketCommand struct {
	Actor       common.Actor
	Title       string
	Description string
	Category    string
	Priority    string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor.Can(authorization.ActionTicketCreate) {
		return nil, errors.NewForbiddenError("not allowed to create tickets")
	}

	priority := vo.DefaultPriority
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(cmd.Actor.OrganizationID, cmd.Title, cmd.Description, cmd.Category, priority, cmd.Actor.ProfileID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return errors.NewPersistenceError(err, "failed to create ticket")
		}

		actorID := cmd.Actor.ProfileID
		activity, err := ticket.NewActivity(t.ID(), &actorID, constants.ActivityCreated, nil, nil)
		if err != nil {
			return errors.NewInternalError("failed to record activity")
		}
		if err := uc.activityRepo.Append(txCtx, activity); err != nil {
			uc.logger.Errorw("failed to append activity", "ticket_id", t.ID(), "error", err)
			return errors.NewPersistenceError(err, "failed to record activity")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "org_id", cmd.Actor.OrganizationID, "created_by", cmd.Actor.ProfileID)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
