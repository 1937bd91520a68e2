package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/common"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"max=50"`
	Priority    string `json:"priority"`
}

type UpdateTicketRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"max=50"`
	Tags        []string `json:"tags"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type AssignTicketRequest struct {
	// AssigneeID null unassigns the ticket.
	AssigneeID *uint `json:"assignee_id"`
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

type ListTicketsRequest struct {
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

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      constants.DefaultPage,
		PageSize:  constants.DefaultPageSize,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return nil, errors.NewValidationError("invalid page parameter")
		}
		req.Page = page
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return nil, errors.NewValidationError("invalid page_size parameter")
		}
		req.PageSize = size
	}

	if assignedStr := c.Query("assigned_to"); assignedStr != "" {
		assigned, err := strconv.ParseUint(assignedStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assigned_to parameter")
		}
		id := uint(assigned)
		req.AssignedTo = &id
	}

	return req, nil
}

func (r *ListTicketsRequest) ToQuery(actor common.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:      actor,
		Status:     r.Status,
		Priority:   r.Priority,
		Category:   r.Category,
		AssignedTo: r.AssignedTo,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}
