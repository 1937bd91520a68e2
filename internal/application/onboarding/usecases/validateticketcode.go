package usecases

import (
	"context"

	"helpdesk/internal/domain/organization"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type ValidateTicketCodeQuery struct {
	Code string
}

type ValidateTicketCodeResult struct {
	OrganizationName string
	TicketTitle      string
}

type ValidateTicketCodeUseCase struct {
	ticketRepo ticket.TicketRepository
	orgRepo    organization.OrganizationRepository
	logger     logger.Interface
}

func NewValidateTicketCodeUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo organization.OrganizationRepository,
	logger logger.Interface,
) *ValidateTicketCodeUseCase {
	return &ValidateTicketCodeUseCase{
		ticketRepo: ticketRepo,
		orgRepo:    orgRepo,
		logger:     logger,
	}
}

func (uc *ValidateTicketCodeUseCase) Execute(ctx context.Context, query ValidateTicketCodeQuery) (*ValidateTicketCodeResult, error) {
	code := id.NormalizeCode(query.Code)
	if code == "" {
		return nil, errors.NewValidationError("ticket code is required")
	}

	t, err := uc.ticketRepo.FindByTicketCode(ctx, code)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCodeError()
		}
		uc.logger.Errorw("failed to look up ticket code", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up ticket code")
	}

	org, err := uc.orgRepo.FindByID(ctx, t.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to load organization", "org_id", t.OrganizationID(), "error", err)
		return nil, errors.NewPersistenceError(err, "failed to load organization")
	}

	return &ValidateTicketCodeResult{
		OrganizationName: org.Name(),
		TicketTitle:      t.Title(),
	}, nil
}
