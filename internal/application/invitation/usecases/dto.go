package usecases

import (
	"time"

	"helpdesk/internal/domain/invitation"
)

// InvitationView is the read model returned by invitation queries.
type InvitationView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	Status    string    `json:"status"`
	InvitedBy uint      `json:"invited_by"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func toInvitationView(inv *invitation.Invitation) InvitationView {
	return InvitationView{
		ID:        inv.ID(),
		Email:     inv.Email(),
		Role:      inv.Role().String(),
		Token:     inv.Token(),
		Status:    inv.Status().String(),
		InvitedBy: inv.InvitedBy(),
		ExpiresAt: inv.ExpiresAt(),
		CreatedAt: inv.CreatedAt(),
	}
}
