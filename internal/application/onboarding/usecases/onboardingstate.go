package usecases

import (
	"context"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const (
	StatePending  = "pending"
	StateComplete = "complete"
)

type GetOnboardingStateQuery struct {
	Subject string
}

type OnboardingStateResult struct {
	State            string
	ProfileID        uint
	OrganizationID   *uint
	OrganizationName string
	Role             string
}

// GetOnboardingStateUseCase answers "has this identity finished setup"
// deterministically, replacing client-side polling of the profile row.
type GetOnboardingStateUseCase struct {
	profileRepo identity.ProfileRepository
	orgRepo     organization.OrganizationRepository
	logger      logger.Interface
}

func NewGetOnboardingStateUseCase(
	profileRepo identity.ProfileRepository,
	orgRepo organization.OrganizationRepository,
	logger logger.Interface,
) *GetOnboardingStateUseCase {
	return &GetOnboardingStateUseCase{
		profileRepo: profileRepo,
		orgRepo:     orgRepo,
		logger:      logger,
	}
}

func (uc *GetOnboardingStateUseCase) Execute(ctx context.Context, query GetOnboardingStateQuery) (*OnboardingStateResult, error) {
	if query.Subject == "" {
		return nil, errors.NewUnauthorizedError("missing identity")
	}

	profile, err := uc.profileRepo.FindBySubject(ctx, query.Subject)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// No profile row yet is the same state as an unbound one.
			return &OnboardingStateResult{State: StatePending}, nil
		}
		uc.logger.Errorw("failed to look up profile", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up profile")
	}

	if profile.IsPending() {
		return &OnboardingStateResult{
			State:     StatePending,
			ProfileID: profile.ID(),
		}, nil
	}

	org, err := uc.orgRepo.FindByID(ctx, *profile.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to load organization", "org_id", *profile.OrganizationID(), "error", err)
		return nil, errors.NewPersistenceError(err, "failed to load organization")
	}

	return &OnboardingStateResult{
		State:            StateComplete,
		ProfileID:        profile.ID(),
		OrganizationID:   profile.OrganizationID(),
		OrganizationName: org.Name(),
		Role:             profile.Role().String(),
	}, nil
}
