package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

// codeGenerationAttempts bounds retries when a freshly generated code
// collides with an existing one.
const codeGenerationAttempts = 3

type GenerateTicketCodeCommand struct {
	Actor    common.Actor
	TicketID uint
}

type GenerateTicketCodeResult struct {
	TicketID   uint
	TicketCode string
}

type GenerateTicketCodeUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGenerateTicketCodeUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GenerateTicketCodeUseCase {
	return &GenerateTicketCodeUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute attaches a shareable code to the ticket. The operation is
// idempotent: a ticket that already carries a code returns it unchanged.
func (uc *GenerateTicketCodeUseCase) Execute(ctx context.Context, cmd GenerateTicketCodeCommand) (*GenerateTicketCodeResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTicketGenerateCode) {
		return nil, errors.NewForbiddenError("not allowed to generate ticket codes")
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

	if t.TicketCode() != nil {
		return &GenerateTicketCodeResult{
			TicketID:   t.ID(),
			TicketCode: *t.TicketCode(),
		}, nil
	}

	// The unique index on ticket_code is the arbiter; on collision we
	// mint a new code and try again.
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := id.NewTicketCode()
		if err != nil {
			return nil, errors.NewInternalError("failed to generate ticket code")
		}
		if err := t.AttachTicketCode(code); err != nil {
			return nil, errors.NewInternalError("failed to attach ticket code")
		}

		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			if errors.IsDuplicateError(err) {
				uc.logger.Warnw("ticket code collision, retrying", "ticket_id", cmd.TicketID, "attempt", attempt+1)
				var reloadErr error
				t, reloadErr = uc.ticketRepo.FindByIDInScope(ctx, cmd.TicketID, scope)
				if reloadErr != nil {
					return nil, errors.NewPersistenceError(reloadErr, "failed to reload ticket")
				}
				continue
			}
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return nil, errors.NewPersistenceError(err, "failed to generate ticket code")
		}

		uc.logger.Infow("ticket code generated", "ticket_id", cmd.TicketID)
		return &GenerateTicketCodeResult{
			TicketID:   t.ID(),
			TicketCode: code,
		}, nil
	}

	return nil, errors.NewInternalError("failed to generate a unique ticket code")
}
