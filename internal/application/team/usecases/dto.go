package usecases

import (
	"time"

	"helpdesk/internal/domain/identity"
)

// MemberView is the read model returned by team queries.
type MemberView struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	TicketCode *string   `json:"ticket_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toMemberView(p *identity.Profile) MemberView {
	return MemberView{
		ID:         p.ID(),
		FullName:   p.FullName(),
		Email:      p.Email(),
		Role:       p.Role().String(),
		IsActive:   p.IsActive(),
		TicketCode: p.TicketCode(),
		CreatedAt:  p.CreatedAt(),
	}
}
