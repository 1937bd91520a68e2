package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// FindByIDInScope returns the ticket only when the scope allows it;
	// an out-of-scope ticket is reported as not found.
	FindByIDInScope(ctx context.Context, id uint, scope AccessScope) (*Ticket, error)
	// FindByTicketCode looks a ticket up by its share code. Codes are
	// globally unique; onboarding resolves them before knowing the org.
	FindByTicketCode(ctx context.Context, code string) (*Ticket, error)
	List(ctx context.Context, scope AccessScope, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, scope AccessScope) (map[vo.Status]int64, error)
}

type TicketFilter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	Category   string
	AssignedTo *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// ListByTicket returns comments oldest first. Internal comments are
	// excluded at query level unless includeInternal is set.
	ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*Comment, error)
}

type ActivityRepository interface {
	Append(ctx context.Context, activity *Activity) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Activity, error)
}
