package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/constants"
)

// Activity is one append-only audit entry. Entries are written in the
// same transaction as the mutation they describe and are never updated
// or deleted.
type Activity struct {
	id        uint
	ticketID  uint
	actorID   *uint
	action    string
	oldValue  *string
	newValue  *string
	createdAt time.Time
}

func NewActivity(
	ticketID uint,
	actorID *uint,
	action string,
	oldValue, newValue *string,
) (*Activity, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if actorID != nil && *actorID == 0 {
		return nil, fmt.Errorf("actor profile ID cannot be zero")
	}

	return &Activity{
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		oldValue:  truncateValue(oldValue),
		newValue:  truncateValue(newValue),
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructActivity(
	id uint,
	ticketID uint,
	actorID *uint,
	action string,
	oldValue, newValue *string,
	createdAt time.Time,
) (*Activity, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Activity{
		id:        id,
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		oldValue:  oldValue,
		newValue:  newValue,
		createdAt: createdAt,
	}, nil
}

func (a *Activity) ID() uint {
	return a.id
}

func (a *Activity) TicketID() uint {
	return a.ticketID
}

func (a *Activity) ActorID() *uint {
	return a.actorID
}

func (a *Activity) Action() string {
	return a.action
}

func (a *Activity) OldValue() *string {
	return a.oldValue
}

func (a *Activity) NewValue() *string {
	return a.newValue
}

func (a *Activity) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Activity) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.id = id
	return nil
}

// truncateValue caps logged values so long comment bodies do not bloat
// the audit trail.
func truncateValue(v *string) *string {
	if v == nil {
		return nil
	}
	if len(*v) <= constants.ActivityValueMaxLen {
		return v
	}
	truncated := (*v)[:constants.ActivityValueMaxLen]
	return &truncated
}
