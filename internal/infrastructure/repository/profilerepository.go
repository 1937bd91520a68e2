package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     database,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, profile *identity.Profile) error {
	model := r.mapper.ToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return profile.SetID(model.ID)
}

func (r *ProfileRepository) Update(ctx context.Context, profile *identity.Profile) error {
	model := r.mapper.ToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists zero-able columns explicitly so deactivation and
	// unbinding survive GORM's non-zero update filter.
	result := tx.
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Select("OrganizationID", "FullName", "FullNameNorm", "Email", "Role", "IsActive", "TicketCode", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uint) (*identity.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) FindBySubject(ctx context.Context, subject string) (*identity.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("subject = ?", subject).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) FindByTicketCredential(ctx context.Context, ticketCode, normalizedName string) (*identity.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_code = ? AND full_name_norm = ?", ticketCode, normalizedName).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) ListByOrganization(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.ProfileModel{}).
		Where("organization_id = ?", organizationID)

	if len(filter.Roles) > 0 {
		roles := make([]string, len(filter.Roles))
		for i, role := range filter.Roles {
			roles[i] = role.String()
		}
		query = query.Where("role IN ?", roles)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	var profileModels []models.ProfileModel
	if err := query.
		Order("created_at ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&profileModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*identity.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		profiles[i] = p
	}

	return profiles, total, nil
}

func (r *ProfileRepository) CountByRole(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ProfileModel{}).
		Where("organization_id = ? AND role = ? AND is_active = ?", organizationID, role.String(), true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}
