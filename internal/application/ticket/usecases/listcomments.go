package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor    common.Actor
	TicketID uint
}

type ListCommentsResult struct {
	Comments []CommentView
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	renderer    ContentRenderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	renderer ContentRenderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	scope, err := query.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByIDInScope(ctx, query.TicketID, scope)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewPersistenceError(err, "failed to load ticket")
	}

	// Internal comments are excluded in the query itself, never by
	// post-filtering, so a requester response can never leak one.
	includeInternal := query.Actor.Can(authorization.ActionCommentViewInternal)

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID(), includeInternal)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list comments")
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		html, err := uc.renderer.Render(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "comment_id", c.ID(), "error", err)
			html = ""
		}
		views = append(views, CommentView{
			ID:          c.ID(),
			TicketID:    c.TicketID(),
			AuthorID:    c.AuthorID(),
			Content:     c.Content(),
			ContentHTML: html,
			IsInternal:  c.IsInternal(),
			CreatedAt:   c.CreatedAt(),
		})
	}

	return &ListCommentsResult{Comments: views}, nil
}
