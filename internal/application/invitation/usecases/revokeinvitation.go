package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RevokeInvitationCommand struct {
	Actor        common.Actor
	InvitationID uint
}

// RevokeInvitationUseCase withdraws a pending invitation. Invitations in
// any other state cannot be revoked.
type RevokeInvitationUseCase struct {
	invitationRepo invitation.InvitationRepository
	logger         logger.Interface
}

func NewRevokeInvitationUseCase(
	invitationRepo invitation.InvitationRepository,
	logger logger.Interface,
) *RevokeInvitationUseCase {
	return &RevokeInvitationUseCase{
		invitationRepo: invitationRepo,
		logger:         logger,
	}
}

func (uc *RevokeInvitationUseCase) Execute(ctx context.Context, cmd RevokeInvitationCommand) error {
	if err := cmd.Actor.Validate(); err != nil {
		return err
	}
	if cmd.InvitationID == 0 {
		return errors.NewValidationError("invitation ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionInvitationRevoke) {
		return errors.NewForbiddenError("not allowed to revoke invitations")
	}

	inv, err := uc.invitationRepo.FindByID(ctx, cmd.InvitationID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("invitation not found")
		}
		uc.logger.Errorw("failed to look up invitation", "invitation_id", cmd.InvitationID, "error", err)
		return errors.NewPersistenceError(err, "failed to look up invitation")
	}
	if inv.OrganizationID() != cmd.Actor.OrganizationID {
		return errors.NewNotFoundError("invitation not found")
	}

	if err := inv.Revoke(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.invitationRepo.MarkRevoked(ctx, inv.ID()); err != nil {
		uc.logger.Errorw("failed to revoke invitation", "invitation_id", cmd.InvitationID, "error", err)
		return errors.NewPersistenceError(err, "failed to revoke invitation")
	}

	uc.logger.Infow("invitation revoked",
		"org_id", cmd.Actor.OrganizationID,
		"invitation_id", cmd.InvitationID,
		"revoked_by", cmd.Actor.ProfileID)
	return nil
}
