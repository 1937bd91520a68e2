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

type ListMembersQuery struct {
	Actor    common.Actor
	Role     string
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

type ListMembersResult struct {
	Members    []MemberView
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListMembersUseCase returns the staff roster: owners, admins, and agents.
// Customers are listed separately.
type ListMembersUseCase struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewListMembersUseCase(
	profileRepo identity.ProfileRepository,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor.Can(authorization.ActionTeamView) {
		return nil, errors.NewForbiddenError("not allowed to view the team")
	}

	roles := []authorization.Role{authorization.RoleOwner, authorization.RoleAdmin, authorization.RoleAgent}
	if query.Role != "" {
		role, ok := authorization.ParseRole(query.Role)
		if !ok || !role.IsStaff() {
			return nil, errors.NewValidationError("invalid role filter")
		}
		roles = []authorization.Role{role}
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := identity.MemberFilter{
		Roles:    roles,
		Active:   query.Active,
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	profiles, total, err := uc.profileRepo.ListByOrganization(ctx, query.Actor.OrganizationID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list members", "org_id", query.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list members")
	}

	views := make([]MemberView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, toMemberView(p))
	}

	return &ListMembersResult{
		Members:    views,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
