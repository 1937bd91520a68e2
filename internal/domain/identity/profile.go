// Package identity models a user's place within one tenant: the profile
// binding an auth-provider subject to an organization and role.
package identity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// Profile is keyed by the opaque subject supplied by the authentication
// provider. A profile with no organization is in the transient "pending
// setup" state; once bound, the binding is permanent.
type Profile struct {
	id             uint
	subject        string
	organizationID *uint
	fullName       string
	email          string
	role           authorization.Role
	isActive       bool
	ticketCode     *string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPendingProfile creates a profile awaiting organization binding.
func NewPendingProfile(subject, email, fullName string) (*Profile, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("auth subject is required")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 120 {
		return nil, fmt.Errorf("full name exceeds maximum length of 120 characters")
	}

	now := biztime.NowUTC()
	return &Profile{
		subject:   subject,
		email:     strings.ToLower(strings.TrimSpace(email)),
		fullName:  strings.TrimSpace(fullName),
		role:      authorization.RoleRequester,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(
	id uint,
	subject string,
	organizationID *uint,
	fullName string,
	email string,
	role authorization.Role,
	isActive bool,
	ticketCode *string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("auth subject is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:             id,
		subject:        subject,
		organizationID: organizationID,
		fullName:       fullName,
		email:          email,
		role:           role,
		isActive:       isActive,
		ticketCode:     ticketCode,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) Subject() string {
	return p.subject
}

func (p *Profile) OrganizationID() *uint {
	return p.organizationID
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) Role() authorization.Role {
	return p.role
}

func (p *Profile) IsActive() bool {
	return p.isActive
}

func (p *Profile) TicketCode() *string {
	return p.ticketCode
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsPending reports whether the profile still awaits organization binding.
func (p *Profile) IsPending() bool {
	return p.organizationID == nil
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// BindToOrganization attaches the profile to a tenant with a role. Binding
// is terminal: there is no leave-organization operation.
func (p *Profile) BindToOrganization(organizationID uint, role authorization.Role) error {
	if organizationID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if p.organizationID != nil {
		return fmt.Errorf("profile is already bound to an organization")
	}

	p.organizationID = &organizationID
	p.role = role
	p.updatedAt = biztime.NowUTC()
	return nil
}

// BindTicketCode records the ticket code a customer signed up with. The
// code participates in ticket visibility for requester profiles.
func (p *Profile) BindTicketCode(code string) error {
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	if p.ticketCode != nil && *p.ticketCode != code {
		return fmt.Errorf("profile is already bound to a different ticket code")
	}

	p.ticketCode = &code
	p.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole updates the member's role within the tenant.
func (p *Profile) ChangeRole(newRole authorization.Role) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if p.organizationID == nil {
		return fmt.Errorf("cannot change role of an unbound profile")
	}

	p.role = newRole
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Profile) Deactivate() {
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
}

func (p *Profile) Reactivate() {
	p.isActive = true
	p.updatedAt = biztime.NowUTC()
}

// nameFolder strips combining marks so "José" and "Jose" normalize to
// the same credential.
var nameFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeFullName canonicalizes a name for the (ticket_code, full_name)
// credential pair: diacritics folded, case-folded, interior whitespace
// collapsed. Two logins with the same pair must resolve to the same
// profile.
func NormalizeFullName(name string) string {
	folded, _, err := transform.String(nameFolder, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
