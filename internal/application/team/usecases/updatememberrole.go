package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateMemberRoleCommand struct {
	Actor     common.Actor
	ProfileID uint
	Role      string
}

type UpdateMemberRoleResult struct {
	Member MemberView
}

type UpdateMemberRoleUseCase struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewUpdateMemberRoleUseCase(
	profileRepo identity.ProfileRepository,
	logger logger.Interface,
) *UpdateMemberRoleUseCase {
	return &UpdateMemberRoleUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateMemberRoleUseCase) Execute(ctx context.Context, cmd UpdateMemberRoleCommand) (*UpdateMemberRoleResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.ProfileID == 0 {
		return nil, errors.NewValidationError("profile ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionTeamManage) {
		return nil, errors.NewForbiddenError("not allowed to manage the team")
	}
	if cmd.ProfileID == cmd.Actor.ProfileID {
		return nil, errors.NewValidationError("cannot change own role")
	}

	newRole, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}
	if !newRole.AssignableBy(cmd.Actor.Role) {
		return nil, errors.NewForbiddenError("not allowed to grant this role")
	}

	target, err := loadOrgMember(ctx, uc.profileRepo, uc.logger, cmd.Actor, cmd.ProfileID)
	if err != nil {
		return nil, err
	}

	if target.Role() == authorization.RoleOwner {
		if err := uc.guardOwnerChange(ctx, cmd.Actor); err != nil {
			return nil, err
		}
	} else if !target.Role().AssignableBy(cmd.Actor.Role) {
		return nil, errors.NewForbiddenError("not allowed to manage this member")
	}

	if err := target.ChangeRole(newRole); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update member role", "profile_id", cmd.ProfileID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to update member role")
	}

	uc.logger.Infow("member role updated",
		"org_id", cmd.Actor.OrganizationID,
		"profile_id", cmd.ProfileID,
		"new_role", newRole.String(),
		"changed_by", cmd.Actor.ProfileID)

	return &UpdateMemberRoleResult{Member: toMemberView(target)}, nil
}

// guardOwnerChange enforces that only an owner may touch another owner and
// that the organization never loses its last owner.
func (uc *UpdateMemberRoleUseCase) guardOwnerChange(ctx context.Context, actor common.Actor) error {
	if actor.Role != authorization.RoleOwner {
		return errors.NewForbiddenError("not allowed to manage an owner")
	}
	owners, err := uc.profileRepo.CountByRole(ctx, actor.OrganizationID, authorization.RoleOwner)
	if err != nil {
		uc.logger.Errorw("failed to count owners", "org_id", actor.OrganizationID, "error", err)
		return errors.NewPersistenceError(err, "failed to count owners")
	}
	if owners <= 1 {
		return errors.NewConflictError("cannot demote the last owner")
	}
	return nil
}
