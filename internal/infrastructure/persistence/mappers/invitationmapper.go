package mappers

import (
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// InvitationMapper handles the conversion between Invitation domain
// entities and persistence models.
type InvitationMapper interface {
	ToModel(inv *invitation.Invitation) *models.InvitationModel
	ToDomain(model *models.InvitationModel) (*invitation.Invitation, error)
}

type InvitationMapperImpl struct{}

func NewInvitationMapper() InvitationMapper {
	return &InvitationMapperImpl{}
}

func (m *InvitationMapperImpl) ToModel(inv *invitation.Invitation) *models.InvitationModel {
	return &models.InvitationModel{
		ID:             inv.ID(),
		OrganizationID: inv.OrganizationID(),
		Email:          inv.Email(),
		Role:           inv.Role().String(),
		InvitedBy:      inv.InvitedBy(),
		Token:          inv.Token(),
		Status:         inv.Status().String(),
		ExpiresAt:      inv.ExpiresAt().UnixMilli(),
		CreatedAt:      inv.CreatedAt().UnixMilli(),
	}
}

func (m *InvitationMapperImpl) ToDomain(model *models.InvitationModel) (*invitation.Invitation, error) {
	return invitation.ReconstructInvitation(
		model.ID,
		model.OrganizationID,
		model.Email,
		authorization.Role(model.Role),
		model.InvitedBy,
		model.Token,
		millisToTime(model.ExpiresAt),
		invitation.Status(model.Status),
		millisToTime(model.CreatedAt),
	)
}
