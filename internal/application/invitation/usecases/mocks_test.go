package usecases

import (
	"context"

	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/shared/logger"
)

type mockInvitationRepository struct {
	SaveFunc               func(ctx context.Context, inv *invitation.Invitation) error
	FindByIDFunc           func(ctx context.Context, id uint) (*invitation.Invitation, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID uint, filter invitation.ListFilter) ([]*invitation.Invitation, int64, error)
	MarkRevokedFunc        func(ctx context.Context, id uint) error
}

func (m *mockInvitationRepository) Save(ctx context.Context, inv *invitation.Invitation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inv)
	}
	return inv.SetID(1)
}

func (m *mockInvitationRepository) FindByID(ctx context.Context, id uint) (*invitation.Invitation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvitationRepository) FindByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	return nil, nil
}

func (m *mockInvitationRepository) ListByOrganization(ctx context.Context, organizationID uint, filter invitation.ListFilter) ([]*invitation.Invitation, int64, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID, filter)
	}
	return nil, 0, nil
}

func (m *mockInvitationRepository) ConsumePending(ctx context.Context, id uint) (bool, error) {
	return true, nil
}

func (m *mockInvitationRepository) MarkRevoked(ctx context.Context, id uint) error {
	if m.MarkRevokedFunc != nil {
		return m.MarkRevokedFunc(ctx, id)
	}
	return nil
}

func (m *mockInvitationRepository) MarkExpired(ctx context.Context, id uint) error {
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
