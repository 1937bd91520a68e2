package organization

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Organization is the tenant boundary. Every profile, ticket, and
// invitation references exactly one organization.
type Organization struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

func NewOrganization(name, slug string) (*Organization, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 120 {
		return nil, fmt.Errorf("organization name exceeds maximum length of 120 characters")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("organization slug is required")
	}

	now := biztime.NowUTC()
	return &Organization{
		name:      name,
		slug:      slug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrganization(id uint, name, slug string, createdAt, updatedAt time.Time) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("organization slug is required")
	}

	return &Organization{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (o *Organization) ID() uint {
	return o.id
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) Slug() string {
	return o.slug
}

func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Organization) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

// Rename updates the display name and slug. Everything else about an
// organization is immutable after creation.
func (o *Organization) Rename(name, slug string) error {
	if len(name) == 0 {
		return fmt.Errorf("organization name is required")
	}
	if len(name) > 120 {
		return fmt.Errorf("organization name exceeds maximum length of 120 characters")
	}
	if len(slug) == 0 {
		return fmt.Errorf("organization slug is required")
	}

	o.name = name
	o.slug = slug
	o.updatedAt = biztime.NowUTC()
	return nil
}
