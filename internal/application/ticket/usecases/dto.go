package usecases

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// TicketView is the read model returned by get and list operations.
type TicketView struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedBy   *uint      `json:"created_by,omitempty"`
	AssignedTo  *uint      `json:"assigned_to,omitempty"`
	TicketCode  *string    `json:"ticket_code,omitempty"`
	Tags        []string   `json:"tags"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		TicketCode:  t.TicketCode(),
		Tags:        t.Tags(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// CommentView is the read model for ticket comments. ContentHTML holds
// the rendered markdown; Content keeps the sanitized source.
type CommentView struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    *uint     `json:"author_id,omitempty"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityView is the read model for audit log entries.
type ActivityView struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	ActorID   *uint     `json:"actor_id,omitempty"`
	Action    string    `json:"action"`
	OldValue  *string   `json:"old_value,omitempty"`
	NewValue  *string   `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toActivityView(a *ticket.Activity) ActivityView {
	return ActivityView{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		ActorID:   a.ActorID(),
		Action:    a.Action(),
		OldValue:  a.OldValue(),
		NewValue:  a.NewValue(),
		CreatedAt: a.CreatedAt(),
	}
}
