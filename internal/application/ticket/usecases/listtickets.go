package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor      common.Actor
	Status     string
	Priority   string
	Category   string
	AssignedTo *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets    []TicketView
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}

	scope, err := query.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	filter := ticket.TicketFilter{
		Category:   query.Category,
		AssignedTo: query.AssignedTo,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	tickets, total, err := uc.ticketRepo.List(ctx, scope, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "org_id", query.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to list tickets")
	}

	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, toTicketView(t))
	}

	return &ListTicketsResult{
		Tickets:    views,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
