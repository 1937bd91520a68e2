package onboarding

type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
}

type JoinByInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

type JoinByTicketRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
}

type CustomerLoginRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
}
