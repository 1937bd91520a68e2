package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListInvitationsQuery struct {
	Actor    common.Actor
	Status   string
	Page     int
	PageSize int
}

type ListInvitationsResult struct {
	Invitations []InvitationView
	Total       int64
	Page        int
	PageSize    int
	TotalPages  int
}

type ListInvitationsUseCase struct {
	invitationRepo invitation.InvitationRepository
	logger         logger.Interface
}

func NewListInvitationsUseCase(
	invitationRepo invitation.InvitationRepository,
	logger logger.Interface,
) *ListInvitationsUseCase {
	return &ListInvitationsUseCase{
		invitationRepo: invitationRepo,
		logger:         logger,
	}
}

func (uc *ListInvitationsUseCase) Execute(ctx context.Context, query ListInvitationsQuery) (*ListInvitationsResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor.Can(authorization.ActionInvitationList) {
		return nil, errors.NewForbiddenError("not allowed to list invitations")
	}

	filter := invitation.ListFilter{}
	if query.Status != "" {
		status := invitation.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid invitation status")
		}
		filter.Status = status
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	invitations, total, err := uc.invitationRepo.ListByOrganization(ctx, query.Actor.OrganizationID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list invitations", "org_id", query.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list invitations")
	}

	views := make([]InvitationView, 0, len(invitations))
	for _, inv := range invitations {
		views = append(views, toInvitationView(inv))
	}

	return &ListInvitationsResult{
		Invitations: views,
		Total:       total,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
		TotalPages:  utils.TotalPages(total, pagination.PageSize),
	}, nil
}
