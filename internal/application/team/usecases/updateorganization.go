package usecases

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// slugAttempts bounds suffix retries when the natural slug is taken.
const slugAttempts = 3

type UpdateOrganizationCommand struct {
	Actor common.Actor
	Name  string
}

type UpdateOrganizationResult struct {
	OrganizationID uint
	Name           string
	Slug           string
}

// UpdateOrganizationUseCase renames the tenant. The slug is rederived
// from the new name so links stay readable.
type UpdateOrganizationUseCase struct {
	orgRepo organization.OrganizationRepository
	logger  logger.Interface
}

func NewUpdateOrganizationUseCase(
	orgRepo organization.OrganizationRepository,
	logger logger.Interface,
) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*UpdateOrganizationResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor.Can(authorization.ActionOrganizationEdit) {
		return nil, errors.NewForbiddenError("not allowed to edit the organization")
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("organization name is required")
	}

	org, err := uc.orgRepo.FindByID(ctx, cmd.Actor.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "org_id", cmd.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to load organization")
	}

	slug := org.Slug()
	if name != org.Name() {
		slug, err = uc.availableSlug(ctx, name, org.Slug())
		if err != nil {
			return nil, err
		}
	}

	if err := org.Rename(name, slug); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orgRepo.Update(ctx, org); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("organization slug is already taken")
		}
		uc.logger.Errorw("failed to update organization", "org_id", org.ID(), "error", err)
		return nil, errors.NewPersistenceError(err, "failed to update organization")
	}

	uc.logger.Infow("organization updated", "org_id", org.ID(), "slug", org.Slug(), "updated_by", cmd.Actor.ProfileID)

	return &UpdateOrganizationResult{
		OrganizationID: org.ID(),
		Name:           org.Name(),
		Slug:           org.Slug(),
	}, nil
}

// availableSlug rederives a slug from the new name, keeping the current
// slug when the name maps back onto it.
func (uc *UpdateOrganizationUseCase) availableSlug(ctx context.Context, name, current string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", errors.NewValidationError("organization name produces an empty slug")
	}
	if base == current {
		return current, nil
	}

	candidate := base
	for attempt := 0; attempt < slugAttempts; attempt++ {
		exists, err := uc.orgRepo.SlugExists(ctx, candidate)
		if err != nil {
			uc.logger.Errorw("failed to check slug", "slug", candidate, "error", err)
			return "", errors.NewPersistenceError(err, "failed to check slug availability")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", base, strings.ToLower(id.MustGenerate(4)))
	}

	return "", errors.NewConflictError("organization slug is already taken")
}
