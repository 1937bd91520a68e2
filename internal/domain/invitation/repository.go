package invitation

import "context"

type InvitationRepository interface {
	Save(ctx context.Context, inv *Invitation) error
	FindByID(ctx context.Context, id uint) (*Invitation, error)
	FindByToken(ctx context.Context, token string) (*Invitation, error)
	ListByOrganization(ctx context.Context, organizationID uint, filter ListFilter) ([]*Invitation, int64, error)
	// ConsumePending atomically transitions a pending invitation to accepted.
	// It returns false without error when the invitation was no longer
	// pending, which is how concurrent consumers lose the race.
	ConsumePending(ctx context.Context, id uint) (bool, error)
	MarkRevoked(ctx context.Context, id uint) error
	MarkExpired(ctx context.Context, id uint) error
}

type ListFilter struct {
	Status   Status
	Page     int
	PageSize int
}
