package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

// tokenGenerationAttempts bounds retries when a freshly generated token
// collides with an existing one.
const tokenGenerationAttempts = 3

type CreateInvitationCommand struct {
	Actor common.Actor
	Email string
	Role  string
}

type CreateInvitationResult struct {
	Invitation InvitationView
}

type CreateInvitationUseCase struct {
	invitationRepo invitation.InvitationRepository
	expiryDays     int
	logger         logger.Interface
}

// NewCreateInvitationUseCase wires the invitation issuer. expiryDays of
// zero or less falls back to the default validity window.
func NewCreateInvitationUseCase(
	invitationRepo invitation.InvitationRepository,
	expiryDays int,
	logger logger.Interface,
) *CreateInvitationUseCase {
	if expiryDays <= 0 {
		expiryDays = invitation.DefaultExpiryDays
	}
	return &CreateInvitationUseCase{
		invitationRepo: invitationRepo,
		expiryDays:     expiryDays,
		logger:         logger,
	}
}

func (uc *CreateInvitationUseCase) Execute(ctx context.Context, cmd CreateInvitationCommand) (*CreateInvitationResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor.Can(authorization.ActionInvitationCreate) {
		return nil, errors.NewForbiddenError("not allowed to create invitations")
	}
	if cmd.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}
	if !role.AssignableBy(cmd.Actor.Role) {
		return nil, errors.NewForbiddenError("not allowed to grant this role")
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.expiryDays) * 24 * time.Hour)

	// The unique index on token is the arbiter; on collision we mint a
	// new token and try again.
	for attempt := 0; attempt < tokenGenerationAttempts; attempt++ {
		token, err := id.NewInvitationToken()
		if err != nil {
			return nil, errors.NewInternalError("failed to generate invitation token")
		}

		inv, err := invitation.NewInvitation(cmd.Actor.OrganizationID, cmd.Email, role, cmd.Actor.ProfileID, token, expiresAt)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.invitationRepo.Save(ctx, inv); err != nil {
			if errors.IsDuplicateError(err) {
				uc.logger.Warnw("invitation token collision, retrying", "attempt", attempt+1)
				continue
			}
			uc.logger.Errorw("failed to save invitation", "error", err)
			return nil, errors.NewPersistenceError(err, "failed to create invitation")
		}

		uc.logger.Infow("invitation created",
			"org_id", cmd.Actor.OrganizationID,
			"invitation_id", inv.ID(),
			"role", role.String(),
			"invited_by", cmd.Actor.ProfileID)

		return &CreateInvitationResult{Invitation: toInvitationView(inv)}, nil
	}

	return nil, errors.NewInternalError("failed to generate a unique invitation token")
}
