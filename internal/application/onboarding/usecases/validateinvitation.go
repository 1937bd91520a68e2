package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type ValidateInvitationQuery struct {
	Token string
}

type ValidateInvitationResult struct {
	OrganizationName string
	Role             string
	Email            string
	ExpiresAt        time.Time
}

// ValidateInvitationUseCase is the read-only lookup behind live form
// feedback. It never mutates invitation state; an expired-but-pending
// invitation is reported expired without being marked so.
type ValidateInvitationUseCase struct {
	invitationRepo invitation.InvitationRepository
	orgRepo        organization.OrganizationRepository
	logger         logger.Interface
}

func NewValidateInvitationUseCase(
	invitationRepo invitation.InvitationRepository,
	orgRepo organization.OrganizationRepository,
	logger logger.Interface,
) *ValidateInvitationUseCase {
	return &ValidateInvitationUseCase{
		invitationRepo: invitationRepo,
		orgRepo:        orgRepo,
		logger:         logger,
	}
}

func (uc *ValidateInvitationUseCase) Execute(ctx context.Context, query ValidateInvitationQuery) (*ValidateInvitationResult, error) {
	token := id.NormalizeCode(query.Token)
	if token == "" {
		return nil, errors.NewValidationError("invitation token is required")
	}

	inv, err := uc.invitationRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCodeError()
		}
		uc.logger.Errorw("failed to look up invitation", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up invitation")
	}

	// Email match is checked at join time; validation only reports the
	// state of the code itself.
	if err := inv.ValidateForConsumption(inv.Email(), biztime.NowUTC()); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.FindByID(ctx, inv.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to load organization", "org_id", inv.OrganizationID(), "error", err)
		return nil, errors.NewPersistenceError(err, "failed to load organization")
	}

	return &ValidateInvitationResult{
		OrganizationName: org.Name(),
		Role:             inv.Role().String(),
		Email:            inv.Email(),
		ExpiresAt:        inv.ExpiresAt(),
	}, nil
}
