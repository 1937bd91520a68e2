package ticket

import (
	"fmt"

	"helpdesk/internal/shared/authorization"
)

// AccessScope is the single visibility predicate for tickets. It is
// derived once per request from the caller's profile and applied both
// in-memory (Allows) and at query level by the repository, so list,
// get, and stat paths can never disagree about what a caller may see.
//
// Owners and admins see every ticket in the organization. Agents see
// tickets assigned to them. Requesters see tickets they created, plus
// the ticket carrying their bound ticket code.
type AccessScope struct {
	OrganizationID uint
	All            bool
	AssignedTo     *uint
	CreatedBy      *uint
	TicketCode     *string
}

// ScopeFor derives the access scope for a member of an organization.
// ticketCode is the requester's bound code and may be nil.
func ScopeFor(role authorization.Role, profileID, organizationID uint, ticketCode *string) (AccessScope, error) {
	if !role.IsValid() {
		return AccessScope{}, fmt.Errorf("invalid role: %s", role)
	}
	if profileID == 0 {
		return AccessScope{}, fmt.Errorf("profile ID is required")
	}
	if organizationID == 0 {
		return AccessScope{}, fmt.Errorf("organization ID is required")
	}

	scope := AccessScope{OrganizationID: organizationID}

	switch role {
	case authorization.RoleOwner, authorization.RoleAdmin:
		scope.All = true
	case authorization.RoleAgent:
		id := profileID
		scope.AssignedTo = &id
	case authorization.RoleRequester:
		id := profileID
		scope.CreatedBy = &id
		scope.TicketCode = ticketCode
	}

	return scope, nil
}

// Allows reports whether the scope permits viewing the ticket. Callers
// must treat a false result exactly like a missing ticket.
func (s AccessScope) Allows(t *Ticket) bool {
	if t == nil || t.OrganizationID() != s.OrganizationID {
		return false
	}

	if s.All {
		return true
	}

	if s.AssignedTo != nil {
		return t.AssignedTo() != nil && *t.AssignedTo() == *s.AssignedTo
	}

	if s.CreatedBy != nil && t.CreatedBy() != nil && *t.CreatedBy() == *s.CreatedBy {
		return true
	}
	if s.TicketCode != nil && t.TicketCode() != nil && *t.TicketCode() == *s.TicketCode {
		return true
	}

	return false
}
