// Package invitation models one-time invitation codes binding a staff
// invitee to an organization and role.
package invitation

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
	StatusRevoked  Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusExpired, StatusRevoked:
		return true
	}
	return false
}

// IsTerminal reports whether the status can never change again. Only
// pending invitations may transition.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// DefaultExpiryDays is used when no expiry is configured.
const DefaultExpiryDays = 7

type Invitation struct {
	id             uint
	organizationID uint
	email          string
	role           authorization.Role
	invitedBy      uint
	token          string
	expiresAt      time.Time
	status         Status
	createdAt      time.Time
}

func NewInvitation(
	organizationID uint,
	email string,
	role authorization.Role,
	invitedBy uint,
	token string,
	expiresAt time.Time,
) (*Invitation, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleOwner {
		return nil, fmt.Errorf("owner role cannot be granted by invitation")
	}
	if invitedBy == 0 {
		return nil, fmt.Errorf("inviter profile ID is required")
	}
	if len(token) == 0 {
		return nil, fmt.Errorf("token is required")
	}
	if !expiresAt.After(biztime.NowUTC()) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &Invitation{
		organizationID: organizationID,
		email:          strings.ToLower(strings.TrimSpace(email)),
		role:           role,
		invitedBy:      invitedBy,
		token:          token,
		expiresAt:      expiresAt,
		status:         StatusPending,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructInvitation(
	id uint,
	organizationID uint,
	email string,
	role authorization.Role,
	invitedBy uint,
	token string,
	expiresAt time.Time,
	status Status,
	createdAt time.Time,
) (*Invitation, error) {
	if id == 0 {
		return nil, fmt.Errorf("invitation ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Invitation{
		id:             id,
		organizationID: organizationID,
		email:          email,
		role:           role,
		invitedBy:      invitedBy,
		token:          token,
		expiresAt:      expiresAt,
		status:         status,
		createdAt:      createdAt,
	}, nil
}

func (i *Invitation) ID() uint {
	return i.id
}

func (i *Invitation) OrganizationID() uint {
	return i.organizationID
}

func (i *Invitation) Email() string {
	return i.email
}

func (i *Invitation) Role() authorization.Role {
	return i.role
}

func (i *Invitation) InvitedBy() uint {
	return i.invitedBy
}

func (i *Invitation) Token() string {
	return i.token
}

func (i *Invitation) ExpiresAt() time.Time {
	return i.expiresAt
}

func (i *Invitation) Status() Status {
	return i.status
}

func (i *Invitation) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invitation) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invitation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invitation ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.expiresAt)
}

// ValidateForConsumption checks every rejection rule of the employee join
// path in order. joinerEmail is matched case-insensitively when the
// invitation pins an email. The returned errors carry the onboarding error
// taxonomy; a nil return means the invitation may be consumed.
func (i *Invitation) ValidateForConsumption(joinerEmail string, now time.Time) error {
	switch i.status {
	case StatusRevoked:
		return errors.NewCodeRevokedError()
	case StatusAccepted:
		return errors.NewCodeAlreadyUsedError()
	case StatusExpired:
		return errors.NewCodeExpiredError()
	}

	if i.IsExpired(now) {
		return errors.NewCodeExpiredError()
	}

	if i.email != "" && !strings.EqualFold(i.email, strings.TrimSpace(joinerEmail)) {
		return errors.NewEmailMismatchError()
	}

	return nil
}

// Revoke marks a pending invitation revoked; terminal states are rejected.
func (i *Invitation) Revoke() error {
	if i.status.IsTerminal() {
		return fmt.Errorf("cannot revoke invitation in %s state", i.status)
	}
	i.status = StatusRevoked
	return nil
}

// MarkAccepted reflects a successful consumption on the in-memory entity.
// The persistence layer performs the authoritative compare-and-set.
func (i *Invitation) MarkAccepted() error {
	if i.status.IsTerminal() {
		return fmt.Errorf("cannot accept invitation in %s state", i.status)
	}
	i.status = StatusAccepted
	return nil
}
