package mappers

import (
	"encoding/json"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	// ActivityToModel converts an activity domain entity to a persistence model.
	ActivityToModel(a *ticket.Activity) *models.ActivityModel

	// ActivityToDomain converts an activity persistence model to a domain entity.
	ActivityToDomain(model *models.ActivityModel) (*ticket.Activity, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Category:       t.Category(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		CreatedBy:      t.CreatedBy(),
		AssignedTo:     t.AssignedTo(),
		TicketCode:     t.TicketCode(),
		ResolvedAt:     timePtrToMillis(t.ResolvedAt()),
		ClosedAt:       timePtrToMillis(t.ClosedAt()),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	if len(t.Tags()) > 0 {
		tagsJSON, _ := json.Marshal(t.Tags())
		model.Tags = tagsJSON
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.OrganizationID,
		model.Title,
		model.Description,
		model.Category,
		status,
		priority,
		model.CreatedBy,
		model.AssignedTo,
		model.TicketCode,
		tags,
		millisPtrToTime(model.ResolvedAt),
		millisPtrToTime(model.ClosedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) ActivityToModel(a *ticket.Activity) *models.ActivityModel {
	return &models.ActivityModel{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		ActorID:   a.ActorID(),
		Action:    a.Action(),
		OldValue:  a.OldValue(),
		NewValue:  a.NewValue(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ActivityToDomain(model *models.ActivityModel) (*ticket.Activity, error) {
	return ticket.ReconstructActivity(
		model.ID,
		model.TicketID,
		model.ActorID,
		model.Action,
		model.OldValue,
		model.NewValue,
		millisToTime(model.CreatedAt),
	)
}
