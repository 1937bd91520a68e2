package usecases

import (
	"context"
	"time"
)

type CreateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd CreateOrganizationCommand) (*CreateOrganizationResult, error)
}

type JoinByInvitationExecutor interface {
	Execute(ctx context.Context, cmd JoinByInvitationCommand) (*JoinByInvitationResult, error)
}

type JoinByTicketExecutor interface {
	Execute(ctx context.Context, cmd JoinByTicketCommand) (*JoinByTicketResult, error)
}

type CustomerLoginExecutor interface {
	Execute(ctx context.Context, cmd CustomerLoginCommand) (*CustomerLoginResult, error)
}

type ValidateInvitationExecutor interface {
	Execute(ctx context.Context, query ValidateInvitationQuery) (*ValidateInvitationResult, error)
}

type ValidateTicketCodeExecutor interface {
	Execute(ctx context.Context, query ValidateTicketCodeQuery) (*ValidateTicketCodeResult, error)
}

type GetOnboardingStateExecutor interface {
	Execute(ctx context.Context, query GetOnboardingStateQuery) (*OnboardingStateResult, error)
}

// TokenIssuer mints the capability token handed to ticket-code customers.
// Implemented by the JWT service in the infrastructure layer.
type TokenIssuer interface {
	IssueCustomerToken(subject, fullName string) (token string, expiresAt time.Time, err error)
}
