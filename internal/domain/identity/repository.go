package identity

import (
	"context"

	"helpdesk/internal/shared/authorization"
)

type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id uint) (*Profile, error)
	FindBySubject(ctx context.Context, subject string) (*Profile, error)
	// FindByTicketCredential resolves the profile bound to the given ticket
	// code and normalized full name, the customer login credential pair.
	FindByTicketCredential(ctx context.Context, ticketCode, normalizedName string) (*Profile, error)
	ListByOrganization(ctx context.Context, organizationID uint, filter MemberFilter) ([]*Profile, int64, error)
	CountByRole(ctx context.Context, organizationID uint, role authorization.Role) (int64, error)
}

type MemberFilter struct {
	Roles    []authorization.Role
	Active   *bool
	Search   string
	Page     int
	PageSize int
}
