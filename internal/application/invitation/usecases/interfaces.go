package usecases

import "context"

type CreateInvitationExecutor interface {
	Execute(ctx context.Context, cmd CreateInvitationCommand) (*CreateInvitationResult, error)
}

type ListInvitationsExecutor interface {
	Execute(ctx context.Context, query ListInvitationsQuery) (*ListInvitationsResult, error)
}

type RevokeInvitationExecutor interface {
	Execute(ctx context.Context, cmd RevokeInvitationCommand) error
}
