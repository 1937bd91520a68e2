// Package common holds types shared across application use cases.
package common

import (
	domainticket "helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

// Actor identifies the authenticated member executing a use case. It is
// built by the HTTP layer from the loaded profile and passed in every
// command so use cases never read auth state from the context directly.
type Actor struct {
	ProfileID      uint
	OrganizationID uint
	Role           authorization.Role
	TicketCode     *string
}

func (a Actor) Validate() error {
	if a.ProfileID == 0 {
		return errors.NewValidationError("actor profile ID is required")
	}
	if a.OrganizationID == 0 {
		return errors.NewValidationError("actor organization ID is required")
	}
	if !a.Role.IsValid() {
		return errors.NewValidationError("invalid actor role")
	}
	return nil
}

// Can applies the permission predicate for this actor.
func (a Actor) Can(action authorization.Action) bool {
	return authorization.Can(a.Role, action)
}

// Scope derives the ticket visibility scope for this actor.
func (a Actor) Scope() (domainticket.AccessScope, error) {
	return domainticket.ScopeFor(a.Role, a.ProfileID, a.OrganizationID, a.TicketCode)
}
