package usecases

import "context"

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}

type UpdateMemberRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateMemberRoleCommand) (*UpdateMemberRoleResult, error)
}

type DeactivateMemberExecutor interface {
	Execute(ctx context.Context, cmd SetMemberStatusCommand) error
}

type ReactivateMemberExecutor interface {
	Execute(ctx context.Context, cmd SetMemberStatusCommand) error
}

type UpdateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*UpdateOrganizationResult, error)
}
