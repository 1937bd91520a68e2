package usecases

import (
	"context"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	FindByIDInScopeFunc  func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error)
	FindByTicketCodeFunc func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context, scope ticket.AccessScope, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc    func(ctx context.Context, scope ticket.AccessScope) (map[vo.Status]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByIDInScope(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
	if m.FindByIDInScopeFunc != nil {
		return m.FindByIDInScopeFunc(ctx, id, scope)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByTicketCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.FindByTicketCodeFunc != nil {
		return m.FindByTicketCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, scope ticket.AccessScope, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, scope ticket.AccessScope) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, scope)
	}
	return map[vo.Status]int64{}, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
}

type mockActivityRepository struct {
	AppendFunc       func(ctx context.Context, a *ticket.Activity) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Activity, error)

	appended []*ticket.Activity
}

func (m *mockActivityRepository) Append(ctx context.Context, a *ticket.Activity) error {
	m.appended = append(m.appended, a)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, a)
	}
	return nil
}

func (m *mockActivityRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Activity, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockProfileRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*identity.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *identity.Profile) error {
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
	return nil, 0, nil
}

func (m *mockProfileRepository) CountByRole(ctx context.Context, organizationID uint, role authorization.Role) (int64, error) {
	return 0, nil
}

// mockTransactor runs the function directly without a database.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockSanitizer struct {
	SanitizeFunc func(content string) string
}

func (m *mockSanitizer) Sanitize(content string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(content)
	}
	return content
}

type mockRenderer struct {
	RenderFunc func(content string) (string, error)
}

func (m *mockRenderer) Render(content string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content)
	}
	return "<p>" + content + "</p>", nil
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
