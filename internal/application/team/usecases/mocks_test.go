package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockProfileRepository struct {
	UpdateFunc             func(ctx context.Context, p *identity.Profile) error
	FindByIDFunc           func(ctx context.Context, id uint) (*identity.Profile, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error)
	CountByRoleFunc        func(ctx context.Context, organizationID uint, role authorization.Role) (int64, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *identity.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uint) (*identity.Profile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindBySubject(ctx context.Context, subject string) (*identity.Profile, error) {
	return nil, nil
}

func (m *mockProfileRepository) FindByTicketCredential(ctx context.Context, ticketCode, normalizedName string) (*identity.Profile, error) {
	return nil, nil
}

func (m *mockProfileRepository) ListByOrganization(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID, filter)
	}
	return nil, 0, nil
}

func (m *mockProfileRepository) CountByRole(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, organizationID, role)
	}
	return 0, nil
}

type mockOrganizationRepository struct {
	UpdateFunc     func(ctx context.Context, org *organization.Organization) error
	FindByIDFunc   func(ctx context.Context, id uint) (*organization.Organization, error)
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockOrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return organization.ReconstructOrganization(id, "Acme", "acme", time.Now(), time.Now())
}

func (m *mockOrganizationRepository) FindBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	return nil, nil
}

func (m *mockOrganizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
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
