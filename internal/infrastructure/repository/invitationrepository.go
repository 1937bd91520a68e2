package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type InvitationRepository struct {
	db     *gorm.DB
	mapper mappers.InvitationMapper
}

func NewInvitationRepository(database *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:     database,
		mapper: mappers.NewInvitationMapper(),
	}
}

func (r *InvitationRepository) Save(ctx context.Context, inv *invitation.Invitation) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invitation: %w", err)
	}

	return inv.SetID(model.ID)
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*invitation.Invitation, error) {
	var model models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	var model models.InvitationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvitationRepository) ListByOrganization(ctx context.Context, organizationID uint, filter invitation.ListFilter) ([]*invitation.Invitation, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.InvitationModel{}).
		Where("organization_id = ?", organizationID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invitations: %w", err)
	}

	var invitationModels []models.InvitationModel
	if err := query.
		Order("created_at DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&invitationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invitations: %w", err)
	}

	invitations := make([]*invitation.Invitation, len(invitationModels))
	for i, model := range invitationModels {
		inv, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		invitations[i] = inv
	}

	return invitations, total, nil
}

// ConsumePending is the compare-and-set behind one-time invitation use.
// The conditional UPDATE only matches a pending row; RowsAffected tells a
// concurrent consumer it lost the race without an error.
func (r *InvitationRepository) ConsumePending(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvitationModel{}).
		Where("id = ? AND status = ?", id, invitation.StatusPending.String()).
		Update("status", invitation.StatusAccepted.String())
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume invitation: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *InvitationRepository) MarkRevoked(ctx context.Context, id uint) error {
	return r.markFromPending(ctx, id, invitation.StatusRevoked)
}

func (r *InvitationRepository) MarkExpired(ctx context.Context, id uint) error {
	return r.markFromPending(ctx, id, invitation.StatusExpired)
}

func (r *InvitationRepository) markFromPending(ctx context.Context, id uint, status invitation.Status) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvitationModel{}).
		Where("id = ? AND status = ?", id, invitation.StatusPending.String()).
		Update("status", status.String())
	if result.Error != nil {
		return fmt.Errorf("failed to mark invitation %s: %w", status, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("invitation is no longer pending")
	}

	return nil
}
