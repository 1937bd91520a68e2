// Package authorization holds the single role/action permission predicate
// shared by every entry point. Handlers and use cases must never hand-roll
// role checks; they ask Can(role, action) so the policy lives in one place.
package authorization

type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleAgent     Role = "agent"
	RoleRequester Role = "requester"
)

var validRoles = map[Role]bool{
	RoleOwner:     true,
	RoleAdmin:     true,
	RoleAgent:     true,
	RoleRequester: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsStaff reports whether the role belongs to the helpdesk side of the
// tenant (owner, admin, or agent) as opposed to a customer.
func (r Role) IsStaff() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleAgent
}

func (r Role) IsRequester() bool {
	return r == RoleRequester
}

// CanManageOrganization reports whether the role administers the tenant.
func (r Role) CanManageOrganization() bool {
	return r == RoleOwner || r == RoleAdmin
}

// AssignableBy reports whether a member with role `by` may grant this role
// to another member. Nobody grants owner; admins cannot mint other admins.
func (r Role) AssignableBy(by Role) bool {
	switch by {
	case RoleOwner:
		return r == RoleAdmin || r == RoleAgent || r == RoleRequester
	case RoleAdmin:
		return r == RoleAgent || r == RoleRequester
	default:
		return false
	}
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
