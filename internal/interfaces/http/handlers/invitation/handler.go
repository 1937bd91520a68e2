package invitation

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/invitation/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// InvitationHandler exposes staff invitation management.
type InvitationHandler struct {
	createInvitationUC usecases.CreateInvitationExecutor
	listInvitationsUC  usecases.ListInvitationsExecutor
	revokeInvitationUC usecases.RevokeInvitationExecutor
	logger             logger.Interface
}

func NewInvitationHandler(
	createInvitationUC usecases.CreateInvitationExecutor,
	listInvitationsUC usecases.ListInvitationsExecutor,
	revokeInvitationUC usecases.RevokeInvitationExecutor,
) *InvitationHandler {
	return &InvitationHandler{
		createInvitationUC: createInvitationUC,
		listInvitationsUC:  listInvitationsUC,
		revokeInvitationUC: revokeInvitationUC,
		logger:             logger.NewLogger(),
	}
}

// CreateInvitation handles POST /invitations
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create invitation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.CreateInvitationCommand{
		Actor: actor,
		Email: req.Email,
		Role:  req.Role,
	}

	result, err := h.createInvitationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invitation created successfully")
}

// ListInvitations handles GET /invitations
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	query := usecases.ListInvitationsQuery{
		Actor:    actor,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listInvitationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Invitations, result.Total, result.Page, result.PageSize)
}

// RevokeInvitation handles DELETE /invitations/:id
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid invitation ID"))
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.RevokeInvitationCommand{
		Actor:        actor,
		InvitationID: uint(id),
	}

	if err := h.revokeInvitationUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation revoked successfully", nil)
}

func parsePagination(c *gin.Context) (int, int, error) {
	page := constants.DefaultPage
	pageSize := constants.DefaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			return 0, 0, errors.NewValidationError("invalid page parameter")
		}
		page = parsed
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed < 1 {
			return 0, 0, errors.NewValidationError("invalid page_size parameter")
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}
