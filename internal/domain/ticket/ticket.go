// Package ticket models support tickets, their comments, and the
// append-only activity log recorded alongside every mutation.
package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

type Ticket struct {
	id             uint
	organizationID uint
	title          string
	description    string
	category       string
	status         vo.Status
	priority       vo.Priority
	createdBy      *uint
	assignedTo     *uint
	ticketCode     *string
	tags           []string
	resolvedAt     *time.Time
	closedAt       *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	organizationID uint,
	title string,
	description string,
	category string,
	priority vo.Priority,
	createdBy uint,
) (*Ticket, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	category = strings.TrimSpace(category)
	if len(category) > 50 {
		return nil, fmt.Errorf("category exceeds maximum length of 50 characters")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator profile ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		organizationID: organizationID,
		title:          title,
		description:    description,
		category:       category,
		status:         vo.StatusOpen,
		priority:       priority,
		createdBy:      &createdBy,
		tags:           []string{},
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	organizationID uint,
	title string,
	description string,
	category string,
	status vo.Status,
	priority vo.Priority,
	createdBy *uint,
	assignedTo *uint,
	ticketCode *string,
	tags []string,
	resolvedAt *time.Time,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	// A nil creator marks an anonymous or system-generated ticket,
	// reachable only through its ticket code.
	if createdBy != nil && *createdBy == 0 {
		return nil, fmt.Errorf("creator profile ID cannot be zero")
	}
	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:             id,
		organizationID: organizationID,
		title:          title,
		description:    description,
		category:       category,
		status:         status,
		priority:       priority,
		createdBy:      createdBy,
		assignedTo:     assignedTo,
		ticketCode:     ticketCode,
		tags:           tags,
		resolvedAt:     resolvedAt,
		closedAt:       closedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OrganizationID() uint {
	return t.organizationID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedBy() *uint {
	return t.createdBy
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) TicketCode() *string {
	return t.ticketCode
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to any valid status; there is no
// transition graph. resolvedAt and closedAt are stamped the first time
// the ticket enters the corresponding status and are never cleared, so
// they record first resolution and first closure even across reopens.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	now := biztime.NowUTC()
	t.updatedAt = now

	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}
	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee profile ID cannot be zero")
	}

	t.assignedTo = &assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) Unassign() {
	t.assignedTo = nil
	t.updatedAt = biztime.NowUTC()
}

// UpdateDetails edits the mutable fields. A nil tags slice keeps the
// existing tags; an empty one clears them.
func (t *Ticket) UpdateDetails(title, description, category string, tags []string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	category = strings.TrimSpace(category)
	if len(category) > 50 {
		return fmt.Errorf("category exceeds maximum length of 50 characters")
	}
	if len(tags) > 20 {
		return fmt.Errorf("too many tags")
	}

	t.title = title
	t.description = description
	t.category = category
	if tags != nil {
		t.tags = tags
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AttachTicketCode binds the share code that lets the requester claim
// this ticket during onboarding. Attaching the same code again is a
// no-op; a ticket never changes codes once one is attached.
func (t *Ticket) AttachTicketCode(code string) error {
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	if t.ticketCode != nil {
		if *t.ticketCode == code {
			return nil
		}
		return fmt.Errorf("ticket already has a different code attached")
	}

	t.ticketCode = &code
	t.updatedAt = biztime.NowUTC()
	return nil
}
