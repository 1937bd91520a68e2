package usecases

import (
	"context"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	Actor common.Actor
}

// GetTicketStatsResult carries dashboard counts. Every status appears
// even when its count is zero, and the counts honor the same visibility
// scope as list and get.
type GetTicketStatsResult struct {
	Total    int64
	ByStatus map[string]int64
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*GetTicketStatsResult, error) {
	if err := query.Actor.Validate(); err != nil {
		return nil, err
	}

	scope, err := query.Actor.Scope()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "org_id", query.Actor.OrganizationID, "error", err)
		return nil, errors.NewPersistenceError(err, "failed to compute ticket stats")
	}

	result := &GetTicketStatsResult{
		ByStatus: make(map[string]int64, len(vo.AllStatuses())),
	}
	for _, status := range vo.AllStatuses() {
		n := counts[status]
		result.ByStatus[status.String()] = n
		result.Total += n
	}

	return result, nil
}
