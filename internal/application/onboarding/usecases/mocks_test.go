package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/invitation"
	"helpdesk/internal/domain/organization"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockOrganizationRepository struct {
	SaveFunc       func(ctx context.Context, org *organization.Organization) error
	UpdateFunc     func(ctx context.Context, org *organization.Organization) error
	FindByIDFunc   func(ctx context.Context, id uint) (*organization.Organization, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*organization.Organization, error)
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockOrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, org)
	}
	return org.SetID(1)
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
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

type mockProfileRepository struct {
	SaveFunc                   func(ctx context.Context, p *identity.Profile) error
	UpdateFunc                 func(ctx context.Context, p *identity.Profile) error
	FindByIDFunc               func(ctx context.Context, id uint) (*identity.Profile, error)
	FindBySubjectFunc          func(ctx context.Context, subject string) (*identity.Profile, error)
	FindByTicketCredentialFunc func(ctx context.Context, ticketCode, normalizedName string) (*identity.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
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
	if m.FindBySubjectFunc != nil {
		return m.FindBySubjectFunc(ctx, subject)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindByTicketCredential(ctx context.Context, ticketCode, normalizedName string) (*identity.Profile, error) {
	if m.FindByTicketCredentialFunc != nil {
		return m.FindByTicketCredentialFunc(ctx, ticketCode, normalizedName)
	}
	return nil, nil
}

func (m *mockProfileRepository) ListByOrganization(ctx context.Context, organizationID uint, filter identity.MemberFilter) ([]*identity.Profile, int64, error) {
	return nil, 0, nil
}

func (m *mockProfileRepository) CountByRole(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
	return 0, nil
}

type mockInvitationRepository struct {
	SaveFunc           func(ctx context.Context, inv *invitation.Invitation) error
	FindByTokenFunc    func(ctx context.Context, token string) (*invitation.Invitation, error)
	ConsumePendingFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockInvitationRepository) Save(ctx context.Context, inv *invitation.Invitation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inv)
	}
	return inv.SetID(1)
}

func (m *mockInvitationRepository) FindByID(ctx context.Context, id uint) (*invitation.Invitation, error) {
	return nil, nil
}

func (m *mockInvitationRepository) FindByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockInvitationRepository) ListByOrganization(ctx context.Context, organizationID uint, filter invitation.ListFilter) ([]*invitation.Invitation, int64, error) {
	return nil, 0, nil
}

func (m *mockInvitationRepository) ConsumePending(ctx context.Context, id uint) (bool, error) {
	if m.ConsumePendingFunc != nil {
		return m.ConsumePendingFunc(ctx, id)
	}
	return true, nil
}

func (m *mockInvitationRepository) MarkRevoked(ctx context.Context, id uint) error {
	return nil
}

func (m *mockInvitationRepository) MarkExpired(ctx context.Context, id uint) error {
	return nil
}

type mockTicketRepository struct {
	FindByTicketCodeFunc func(ctx context.Context, code string) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (m *mockTicketRepository) FindByIDInScope(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindByTicketCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.FindByTicketCodeFunc != nil {
		return m.FindByTicketCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, scope ticket.AccessScope, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, scope ticket.AccessScope) (map[vo.Status]int64, error) {
	return nil, nil
}

type mockTokenIssuer struct {
	IssueFunc func(subject, fullName string) (string, time.Time, error)
}

func (m *mockTokenIssuer) IssueCustomerToken(subject, fullName string) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(subject, fullName)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type mockTransactor struct{}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
