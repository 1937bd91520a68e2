package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListCustomersQuery struct {
	Actor    common.Actor
	Search   string
	Page     int
	PageSize int
}

type ListCustomersResult struct {
	Customers  []MemberView
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListCustomersUseCase struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewListCustomersUseCase(
	profileRepo identity.ProfileRepository,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor.Can(authorization.ActionTeamView) {
		return nil, errors.NewForbiddenError("not allowed to view customers")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := identity.MemberFilter{
		Roles:    []authorization.Role{authorization.RoleRequester},
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	profiles, total, err := uc.profileRepo.ListByOrganization(ctx, query.Actor.OrganizationID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "org_id", query.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list customers")
	}

	views := make([]MemberView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, toMemberView(p))
	}

	return &ListCustomersResult{
		Customers:  views,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
