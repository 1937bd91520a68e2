package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type CustomerLoginCommand struct {
	TicketCode string
	FullName   string
}

type CustomerLoginResult struct {
	Token          string
	ExpiresAt      time.Time
	ProfileID      uint
	OrganizationID uint
	TicketID       uint
}

// CustomerLoginUseCase authenticates a customer with the (ticket code,
// full name) pair and issues a short-lived capability token. The pair is
// canonicalized first, so "Dana Jones" and " dana JONES " resolve to the
// same profile; the first login creates it, every later one reuses it.
type CustomerLoginUseCase struct {
	ticketRepo  ticket.TicketRepository
	profileRepo identity.ProfileRepository
	tokens      TokenIssuer
	txMgr       common.Transactor
	logger      logger.Interface
}

func NewCustomerLoginUseCase(
	ticketRepo ticket.TicketRepository,
	profileRepo identity.ProfileRepository,
	tokens TokenIssuer,
	txMgr common.Transactor,
	logger logger.Interface,
) *CustomerLoginUseCase {
	return &CustomerLoginUseCase{
		ticketRepo:  ticketRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *CustomerLoginUseCase) Execute(ctx context.Context, cmd CustomerLoginCommand) (*CustomerLoginResult, error) {
	code := id.NormalizeCode(cmd.TicketCode)
	normName := identity.NormalizeFullName(cmd.FullName)
	if code == "" || normName == "" {
		return nil, errors.NewValidationError("ticket code and full name are required")
	}

	t, err := uc.ticketRepo.FindByTicketCode(ctx, code)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("customer login with unknown ticket code")
			return nil, errors.NewInvalidCodeError()
		}
		uc.logger.Errorw("failed to look up ticket code", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up ticket code")
	}

	profile, err := uc.resolveCustomer(ctx, t, code, normName, cmd.FullName)
	if err != nil {
		return nil, err
	}

	if !profile.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	token, expiresAt, err := uc.tokens.IssueCustomerToken(profile.Subject(), profile.FullName())
	if err != nil {
		uc.logger.Errorw("failed to issue customer token", "profile_id", profile.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("customer logged in", "profile_id", profile.ID(), "org_id", t.OrganizationID())

	return &CustomerLoginResult{
		Token:          token,
		ExpiresAt:      expiresAt,
		ProfileID:      profile.ID(),
		OrganizationID: t.OrganizationID(),
		TicketID:       t.ID(),
	}, nil
}

// resolveCustomer finds the profile bound to the credential pair or
// creates it. The unique index on (ticket_code, normalized name) is the
// arbiter under concurrent first logins; losers re-fetch the winner.
func (uc *CustomerLoginUseCase) resolveCustomer(ctx context.Context, t *ticket.Ticket, code, normName, fullName string) (*identity.Profile, error) {
	profile, err := uc.profileRepo.FindByTicketCredential(ctx, code, normName)
	if err == nil {
		return profile, nil
	}
	if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up customer profile", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up profile")
	}

	subject, serr := id.NewCustomerSubject()
	if serr != nil {
		return nil, errors.NewInternalError("failed to mint customer identity")
	}

	profile, err = identity.NewPendingProfile(subject, "", fullName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := profile.BindToOrganization(t.OrganizationID(), authorization.RoleRequester); err != nil {
		return nil, errors.NewInternalError("failed to bind profile")
	}
	if err := profile.BindTicketCode(code); err != nil {
		return nil, errors.NewInternalError("failed to bind ticket code")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.profileRepo.Save(txCtx, profile); err != nil {
			if errors.IsDuplicateError(err) {
				winner, ferr := uc.profileRepo.FindByTicketCredential(txCtx, code, normName)
				if ferr != nil {
					return errors.NewPersistenceError(ferr, "failed to resolve concurrent login")
				}
				profile = winner
				return nil
			}
			uc.logger.Errorw("failed to save customer profile", "error", err)
			return errors.NewPersistenceError(err, "failed to save profile")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return profile, nil
}
