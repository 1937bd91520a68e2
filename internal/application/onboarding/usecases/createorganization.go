package usecases

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// slugAttempts bounds suffix retries when the natural slug is taken.
const slugAttempts = 3

type CreateOrganizationCommand struct {
	Subject          string
	Email            string
	FullName         string
	OrganizationName string
}

type CreateOrganizationResult struct {
	OrganizationID uint
	Slug           string
	ProfileID      uint
	Role           string
}

type CreateOrganizationUseCase struct {
	orgRepo     organization.OrganizationRepository
	profileRepo identity.ProfileRepository
	txMgr       common.Transactor
	logger      logger.Interface
}

func NewCreateOrganizationUseCase(
	orgRepo organization.OrganizationRepository,
	profileRepo identity.ProfileRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute creates a tenant and binds the caller as its owner. Either both
// writes land or neither does.
func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*CreateOrganizationResult, error) {
	if strings.TrimSpace(cmd.OrganizationName) == "" {
		return nil, errors.NewValidationError("organization name is required")
	}
	if cmd.Subject == "" {
		return nil, errors.NewUnauthorizedError("missing identity")
	}

	profile, err := uc.resolveProfile(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !profile.IsPending() {
		return nil, errors.NewConflictError("profile already belongs to an organization")
	}

	slug, err := uc.availableSlug(ctx, cmd.OrganizationName)
	if err != nil {
		return nil, err
	}

	org, err := organization.NewOrganization(strings.TrimSpace(cmd.OrganizationName), slug)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orgRepo.Save(txCtx, org); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("organization slug is already taken")
			}
			uc.logger.Errorw("failed to save organization", "error", err)
			return errors.NewPersistenceError(err, "failed to create organization")
		}

		if err := profile.BindToOrganization(org.ID(), authorization.RoleOwner); err != nil {
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

	uc.logger.Infow("organization created", "org_id", org.ID(), "slug", org.Slug(), "owner_profile_id", profile.ID())

	return &CreateOrganizationResult{
		OrganizationID: org.ID(),
		Slug:           org.Slug(),
		ProfileID:      profile.ID(),
		Role:           authorization.RoleOwner.String(),
	}, nil
}

func (uc *CreateOrganizationUseCase) resolveProfile(ctx context.Context, cmd CreateOrganizationCommand) (*identity.Profile, error) {
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

func (uc *CreateOrganizationUseCase) availableSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", errors.NewValidationError("organization name produces an empty slug")
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
