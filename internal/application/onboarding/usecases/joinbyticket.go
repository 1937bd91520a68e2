package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/id"
	"helpdesk/internal/shared/logger"
)

type JoinByTicketCommand struct {
	Subject    string
	Email      string
	FullName   string
	TicketCode string
}

type JoinByTicketResult struct {
	OrganizationID uint
	ProfileID      uint
	TicketID       uint
}

// JoinByTicketUseCase binds an authenticated identity to the organization
// that issued a ticket code. The operation is idempotent: repeating it
// with the same code succeeds and changes nothing.
type JoinByTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	profileRepo identity.ProfileRepository
	txMgr       common.Transactor
	logger      logger.Interface
}

func NewJoinByTicketUseCase(
	ticketRepo ticket.TicketRepository,
	profileRepo identity.ProfileRepository,
	txMgr common.Transactor,
	logger logger.Interface,
) *JoinByTicketUseCase {
	return &JoinByTicketUseCase{
		ticketRepo:  ticketRepo,
		profileRepo: profileRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *JoinByTicketUseCase) Execute(ctx context.Context, cmd JoinByTicketCommand) (*JoinByTicketResult, error) {
	if cmd.Subject == "" {
		return nil, errors.NewUnauthorizedError("missing identity")
	}
	code := id.NormalizeCode(cmd.TicketCode)
	if code == "" {
		return nil, errors.NewValidationError("ticket code is required")
	}

	t, err := uc.ticketRepo.FindByTicketCode(ctx, code)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("unknown ticket code presented", "subject", cmd.Subject)
			return nil, errors.NewInvalidCodeError()
		}
		uc.logger.Errorw("failed to look up ticket code", "error", err)
		return nil, errors.NewPersistenceError(err, "failed to look up ticket code")
	}

	profile, err := uc.profileRepo.FindBySubject(ctx, cmd.Subject)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to look up profile", "error", err)
			return nil, errors.NewPersistenceError(err, "failed to look up profile")
		}
		profile, err = identity.NewPendingProfile(cmd.Subject, cmd.Email, cmd.FullName)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if !profile.IsPending() {
		// Rejoining with the same code is a successful no-op.
		if *profile.OrganizationID() == t.OrganizationID() &&
			profile.TicketCode() != nil && *profile.TicketCode() == code {
			return &JoinByTicketResult{
				OrganizationID: t.OrganizationID(),
				ProfileID:      profile.ID(),
				TicketID:       t.ID(),
			}, nil
		}
		return nil, errors.NewConflictError("profile already belongs to an organization")
	}

	if err := profile.BindToOrganization(t.OrganizationID(), authorization.RoleRequester); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := profile.BindTicketCode(code); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if profile.ID() == 0 {
			if err := uc.profileRepo.Save(txCtx, profile); err != nil {
				if errors.IsDuplicateError(err) {
					// A concurrent join won the unique index; converge on it.
					winner, ferr := uc.profileRepo.FindBySubject(txCtx, cmd.Subject)
					if ferr != nil {
						return errors.NewPersistenceError(ferr, "failed to resolve concurrent join")
					}
					profile = winner
					return nil
				}
				uc.logger.Errorw("failed to save profile", "error", err)
				return errors.NewPersistenceError(err, "failed to save profile")
			}
			return nil
		}
		if err := uc.profileRepo.Update(txCtx, profile); err != nil {
			uc.logger.Errorw("failed to update profile", "error", err)
			return errors.NewPersistenceError(err, "failed to update profile")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("customer joined by ticket code", "org_id", t.OrganizationID(), "profile_id", profile.ID(), "ticket_id", t.ID())

	return &JoinByTicketResult{
		OrganizationID: t.OrganizationID(),
		ProfileID:      profile.ID(),
		TicketID:       t.ID(),
	}, nil
}
