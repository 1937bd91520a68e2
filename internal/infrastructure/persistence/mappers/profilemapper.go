package mappers

import (
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// ProfileMapper handles the conversion between Profile domain entities and
// persistence models. FullNameNorm is derived on every write so the
// credential index always matches the canonical form.
type ProfileMapper interface {
	ToModel(p *identity.Profile) *models.ProfileModel
	ToDomain(model *models.ProfileModel) (*identity.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *identity.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:             p.ID(),
		Subject:        p.Subject(),
		OrganizationID: p.OrganizationID(),
		FullName:       p.FullName(),
		FullNameNorm:   identity.NormalizeFullName(p.FullName()),
		Email:          p.Email(),
		Role:           p.Role().String(),
		IsActive:       p.IsActive(),
		TicketCode:     p.TicketCode(),
		CreatedAt:      p.CreatedAt().UnixMilli(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*identity.Profile, error) {
	return identity.ReconstructProfile(
		model.ID,
		model.Subject,
		model.OrganizationID,
		model.FullName,
		model.Email,
		authorization.Role(model.Role),
		model.IsActive,
		model.TicketCode,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
