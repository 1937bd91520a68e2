package mappers

import (
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles the conversion between Organization domain
// entities and persistence models.
type OrganizationMapper interface {
	ToModel(org *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(org *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:        org.ID(),
		Name:      org.Name(),
		Slug:      org.Slug(),
		CreatedAt: org.CreatedAt().UnixMilli(),
		UpdatedAt: org.UpdatedAt().UnixMilli(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Slug,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
