package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor    common.Actor
	TicketID uint
	// AssigneeID nil clears the assignment.
	AssigneeID *uint
}

type AssignTicketResult struct {
	TicketID   uint
	AssignedTo *uint
	UpdatedAt  time.Time
}

type AssignTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	profileRepo  identity.ProfileRepository
	activityRepo ticket.ActivityRepository
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	profileRepo identity.ProfileRepository,
	activityRepo ticket.ActivityRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:   ticketRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTicketAssign) {
		return nil, errors.NewForbiddenError("not allowed to assign tickets")
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

	if cmd.AssigneeID != nil {
		assignee, err := uc.profileRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("assignee not found")
			}
			return nil, errors.NewPersistenceError(err, "failed to look up assignee")
		}
		if assignee.OrganizationID() == nil || *assignee.OrganizationID() != cmd.Actor.OrganizationID {
			return nil, errors.NewValidationError("assignee not found")
		}
		if !assignee.Role().IsStaff() {
			return nil, errors.NewValidationError("tickets can only be assigned to staff members")
		}
		if !assignee.IsActive() {
			return nil, errors.NewValidationError("assignee is deactivated")
		}
	}

	oldAssignee := t.AssignedTo()
	if cmd.AssigneeID != nil {
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		t.Unassign()
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewPersistenceError(err, "failed to update ticket")
		}

		actorID := cmd.Actor.ProfileID
		activity, err := ticket.NewActivity(t.ID(), &actorID, constants.ActivityAssigned,
			assigneeValue(oldAssignee), assigneeValue(t.AssignedTo()))
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

	uc.logger.Infow("ticket assignment changed", "ticket_id", cmd.TicketID, "assigned_to", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssignedTo: t.AssignedTo(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}

func assigneeValue(id *uint) *string {
	if id == nil {
		return nil
	}
	v := fmt.Sprintf("%d", *id)
	return &v
}
