package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// ActivityRepository is append-only; activity rows are never updated or
// deleted once written.
type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ActivityRepository) Append(ctx context.Context, a *ticket.Activity) error {
	model := r.mapper.ActivityToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ActivityRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Activity, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var activityModels []models.ActivityModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	activities := make([]*ticket.Activity, len(activityModels))
	for i, model := range activityModels {
		a, err := r.mapper.ActivityToDomain(&model)
		if err != nil {
			return nil, err
		}
		activities[i] = a
	}

	return activities, nil
}
