package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type JoinByInvitationCommand struct {
	Subject  string
	Email    string
	FullName string
	Token    string
}

type JoinByInvitationResult struct {
	OrganizationID uint
	ProfileID      uint
	Role           string
}

type JoinByInvitationUseCase struct {
	invitationRepo invitation.InvitationRepository
	profileRepo    identity.ProfileRepository
	txMgr          common.Transactor
	logger         logger.Interface
}

func NewJoinByInvitationUseCase(
	invitationRepo invitation.InvitationRepository,
	profileRepo identity.ProfileRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *JoinByInvitationUseCase {
	return &JoinByInvitationUseCase{
		invitationRepo: invitationRepo,
		profileRepo:    profileRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *JoinByInvitationUseCase) Execute(ctx context.Context, cmd JoinByInvitationCommand) (*JoinByInvitationResult, error) {
	if cmd.Subject == "" {
		return nil, errors.NewUnauthorizedError("missing identity")
	}
	token := id.NormalizeCode(cmd.Token)
	if token == "" {
		return nil, errors.NewValidationError("invitation token is required")
	}

	inv, err := uc.invitationRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("unknown invitation token presented", "subject", cmd.Subject)
			return nil, errors.NewInvalidCodeError()
		}
		uc.logger.Errorw("failed to look up invitation", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up invitation")
	}

	if err := inv.ValidateForConsumption(cmd.Email, biztime.NowUTC()); err != nil {
		return nil, err
	}

	profile, err := uc.resolveProfile(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !profile.IsPending() {
		return nil, errors.NewConflictError("profile already belongs to an organization")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The conditional update is the arbiter under concurrency: exactly
		// one caller flips pending to accepted, everyone else loses here.
		consumed, err := uc.invitationRepo.ConsumePending(txCtx, inv.ID())
		if err != nil {
			uc.logger.Errorw("failed to consume invitation", "invitation_id", inv.ID(), "error", err)
			return errors.NewPersistenceError(err, "failed to consume invitation")
		}
		if !consumed {
			return errors.NewCodeAlreadyUsedError()
		}

		if err := profile.BindToOrganization(inv.OrganizationID(), inv.Role()); err != nil {
			return errors.NewConflictError(err.Error())
		}

		if profile.ID() == 0 {
			if err := uc.profileRepo.Save(txCtx, profile); err != nil {
				uc.logger.Errorw("failed to save profile", "error", err)
				return errors.NewPersistenceError(err, "failed to save profile")
			}
		} else {
			if err := uc.profileRepo.Update(txCtx, profile); err != nil {
				uc.logger.Errorw("failed to update profile", "error", err)
				return errors.NewPersistenceError(err, "failed to update profile")
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("member joined by invitation", "org_id", inv.OrganizationID(), "profile_id", profile.ID(), "role", inv.Role())

	return &JoinByInvitationResult{
		OrganizationID: inv.OrganizationID(),
		ProfileID:      profile.ID(),
		Role:           inv.Role().String(),
	}, nil
}

func (uc *JoinByInvitationUseCase) resolveProfile(ctx context.Context, cmd JoinByInvitationCommand) (*identity.Profile, error) {
	profile, err := uc.profileRepo.FindBySubject(ctx, cmd.Subject)
	if err == nil {
		return profile, nil
	}
	if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up profile", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up profile")
	}

	profile, nerr := identity.NewPendingProfile(cmd.Subject, cmd.Email, cmd.FullName)
	if nerr != nil {
		return nil, errors.NewValidationError(nerr.Error())
	}
	return profile, nil
}
