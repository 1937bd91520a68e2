package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"category":    true,
	"status":      true,
	"priority":    true,
	"created_by":  true,
	"assigned_to": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists zero-able columns explicitly so unassignment survives
	// GORM's non-zero update filter.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("Title", "Description", "Category", "Status", "Priority", "AssignedTo", "TicketCode", "Tags", "ResolvedAt", "ClosedAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// FindByIDInScope loads a ticket only when the scope admits it. A ticket
// outside the scope is indistinguishable from one that does not exist.
func (r *TicketRepository) FindByIDInScope(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := applyScope(tx.Model(&models.TicketModel{}), scope).Where("id = ?", id)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByTicketCode resolves a ticket by its shareable code. Codes are
// globally unique, so no tenant filter applies; onboarding uses this
// before the caller's organization is known.
func (r *TicketRepository) FindByTicketCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, scope ticket.AccessScope, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyScope(tx.Model(&models.TicketModel{}), scope)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	var ticketModels []models.TicketModel
	if err := query.
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

// CountByStatus aggregates ticket counts per status under the same scope
// as List, so the dashboard never leaks tickets the caller cannot list.
func (r *TicketRepository) CountByStatus(ctx context.Context, scope ticket.AccessScope) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := applyScope(tx.Model(&models.TicketModel{}), scope).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}

	return counts, nil
}

// applyScope translates the visibility scope into WHERE clauses. The same
// translation backs point reads, lists, and aggregates.
func applyScope(query *gorm.DB, scope ticket.AccessScope) *gorm.DB {
	query = query.Where("organization_id = ?", scope.OrganizationID)
	if scope.All {
		return query
	}

	if scope.AssignedTo != nil {
		return query.Where("assigned_to = ?", *scope.AssignedTo)
	}

	if scope.CreatedBy != nil && scope.TicketCode != nil {
		return query.Where("created_by = ? OR ticket_code = ?", *scope.CreatedBy, *scope.TicketCode)
	}
	if scope.CreatedBy != nil {
		return query.Where("created_by = ?", *scope.CreatedBy)
	}
	if scope.TicketCode != nil {
		return query.Where("ticket_code = ?", *scope.TicketCode)
	}

	// A scope with no predicate admits nothing.
	return query.Where("1 = 0")
}
