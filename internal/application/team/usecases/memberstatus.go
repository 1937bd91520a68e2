package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SetMemberStatusCommand struct {
	Actor     common.Actor
	ProfileID uint
}

// DeactivateMemberUseCase suspends a member's access. A deactivated
// profile keeps its history; nothing is deleted.
type DeactivateMemberUseCase struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewDeactivateMemberUseCase(
	profileRepo identity.ProfileRepository,
	logger logger.Interface,
) *DeactivateMemberUseCase {
	return &DeactivateMemberUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *DeactivateMemberUseCase) Execute(ctx context.Context, cmd SetMemberStatusCommand) error {
	if err := cmd.Actor.Validate(); err != nil {
		return err
	}
	if cmd.ProfileID == 0 {
		return errors.NewValidationError("profile ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTeamManage) {
		return errors.NewForbiddenError("not allowed to manage the team")
	}
	if cmd.ProfileID == cmd.Actor.ProfileID {
		return errors.NewValidationError("cannot deactivate own profile")
	}

	target, err := loadOrgMember(ctx, uc.profileRepo, uc.logger, cmd.Actor, cmd.ProfileID)
	if err != nil {
		return err
	}

	if target.Role() == authorization.RoleOwner {
		if cmd.Actor.Role != authorization.RoleOwner {
			return errors.NewForbiddenError("not allowed to manage an owner")
		}
		owners, cerr := uc.profileRepo.CountByRole(ctx, cmd.Actor.OrganizationID, authorization.RoleOwner)
		if cerr != nil {
			uc.logger.Errorw("failed to count owners", "org_id", cmd.Actor.OrganizationID, "error", cerr)
			return errors.NewPersistenceError(cerr, "failed to count owners")
		}
		if owners <= 1 {
			return errors.NewConflictError("cannot deactivate the last owner")
		}
	} else if target.Role().IsStaff() && !target.Role().AssignableBy(cmd.Actor.Role) {
		return errors.NewForbiddenError("not allowed to manage this member")
	}

	target.Deactivate()
	if err := uc.profileRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to deactivate member", "profile_id", cmd.ProfileID, "error", err)
		return errors.NewPersistenceError(err, "failed to deactivate member")
	}

	uc.logger.Infow("member deactivated",
		"org_id", cmd.Actor.OrganizationID,
		"profile_id", cmd.ProfileID,
		"deactivated_by", cmd.Actor.ProfileID)
	return nil
}

type ReactivateMemberUseCase struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewReactivateMemberUseCase(
	profileRepo identity.ProfileRepository,
	logger logger.Interface,
) *ReactivateMemberUseCase {
	return &ReactivateMemberUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ReactivateMemberUseCase) Execute(ctx context.Context, cmd SetMemberStatusCommand) error {
	if err := cmd.Actor.Validate(); err != nil {
		return err
	}
	if cmd.ProfileID == 0 {
		return errors.NewValidationError("profile ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTeamManage) {
		return errors.NewForbiddenError("not allowed to manage the team")
	}

	target, err := loadOrgMember(ctx, uc.profileRepo, uc.logger, cmd.Actor, cmd.ProfileID)
	if err != nil {
		return err
	}

	if target.Role() == authorization.RoleOwner && cmd.Actor.Role != authorization.RoleOwner {
		return errors.NewForbiddenError("not allowed to manage an owner")
	}
	if target.Role() != authorization.RoleOwner &&
		target.Role().IsStaff() && !target.Role().AssignableBy(cmd.Actor.Role) {
		return errors.NewForbiddenError("not allowed to manage this member")
	}

	target.Reactivate()
	if err := uc.profileRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to reactivate member", "profile_id", cmd.ProfileID, "error", err)
		return errors.NewPersistenceError(err, "failed to reactivate member")
	}

	uc.logger.Infow("member reactivated",
		"org_id", cmd.Actor.OrganizationID,
		"profile_id", cmd.ProfileID,
		"reactivated_by", cmd.Actor.ProfileID)
	return nil
}

// loadOrgMember resolves a member of the actor's organization. A profile
// in another tenant is reported as not found, never as forbidden.
func loadOrgMember(ctx context.Context, repo identity.ProfileRepository, log logger.Interface, actor common.Actor, profileID uint) (*identity.Profile, error) {
	target, err := repo.FindByID(ctx, profileID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("member not found")
		}
		log.Errorw("failed to look up member", "profile_id", profileID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up member")
	}
	if target.OrganizationID() == nil || *target.OrganizationID() != actor.OrganizationID {
		return nil, errors.NewNotFoundError("member not found")
	}
	return target, nil
}
