package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor      common.Actor
	TicketID   uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID  uint
	IsInternal bool
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	activityRepo ticket.ActivityRepository
	sanitizer    ContentSanitizer
	txMgr        common.Transactor
	logger       logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	activityRepo ticket.ActivityRepository,
	sanitizer ContentSanitizer,
	txMgr common.Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		activityRepo: activityRepo,
		sanitizer:    sanitizer,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if err := cmd.Actor.Validate(); err != nil {
		return nil, err
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Can(authorization.ActionCommentAdd) {
		return nil, errors.NewForbiddenError("not allowed to comment")
	}

	scope, err := cmd.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByIDInScope(ctx, cmd.TicketID, scope)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewPersistenceError(err, "failed to load ticket")
	}

	// The internal flag is decided server-side; a requester sending
	// is_internal=true gets a public comment, not an error.
	isInternal := cmd.IsInternal && cmd.Actor.Can(authorization.ActionCommentAddInternal)

	content := uc.sanitizer.Sanitize(cmd.Content)

	authorID := cmd.Actor.ProfileID
	comment, err := ticket.NewComment(t.ID(), &authorID, content, isInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewPersistenceError(err, "failed to save comment")
		}

		preview := comment.Content()
		activity, err := ticket.NewActivity(t.ID(), &authorID, constants.ActivityCommented, nil, &preview)
		if err != nil {
			return errors.NewInternalError("failed to record activity")
		}
		if err := uc.activityRepo.Append(txCtx, activity); err != nil {
			uc.logger.Errorw("failed to append activity", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewPersistenceError(err, "failed to record activity")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID, "internal", isInternal)

	return &AddCommentResult{
		CommentID:  comment.ID(),
		IsInternal: comment.IsInternal(),
		CreatedAt:  comment.CreatedAt(),
	}, nil
}
