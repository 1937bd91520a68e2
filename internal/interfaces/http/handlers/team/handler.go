package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/team/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamHandler exposes member administration and organization settings.
type TeamHandler struct {
	listMembersUC        usecases.ListMembersExecutor
	listCustomersUC      usecases.ListCustomersExecutor
	updateMemberRoleUC   usecases.UpdateMemberRoleExecutor
	deactivateMemberUC   usecases.DeactivateMemberExecutor
	reactivateMemberUC   usecases.ReactivateMemberExecutor
	updateOrganizationUC usecases.UpdateOrganizationExecutor
	logger               logger.Interface
}

func NewTeamHandler(
	listMembersUC usecases.ListMembersExecutor,
	listCustomersUC usecases.ListCustomersExecutor,
	updateMemberRoleUC usecases.UpdateMemberRoleExecutor,
	deactivateMemberUC usecases.DeactivateMemberExecutor,
	reactivateMemberUC usecases.ReactivateMemberExecutor,
	updateOrganizationUC usecases.UpdateOrganizationExecutor,
) *TeamHandler {
	return &TeamHandler{
		listMembersUC:        listMembersUC,
		listCustomersUC:      listCustomersUC,
		updateMemberRoleUC:   updateMemberRoleUC,
		deactivateMemberUC:   deactivateMemberUC,
		reactivateMemberUC:   reactivateMemberUC,
		updateOrganizationUC: updateOrganizationUC,
		logger:               logger.NewLogger(),
	}
}

// ListMembers handles GET /team/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var active *bool
	if activeStr := c.Query("active"); activeStr != "" {
		parsed, err := strconv.ParseBool(activeStr)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid active parameter"))
			return
		}
		active = &parsed
	}

	actor, _ := middleware.ActorFromContext(c)
	query := usecases.ListMembersQuery{
		Actor:    actor,
		Role:     c.Query("role"),
		Active:   active,
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Members, result.Total, result.Page, result.PageSize)
}

// ListCustomers handles GET /team/customers
func (h *TeamHandler) ListCustomers(c *gin.Context) {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	query := usecases.ListCustomersQuery{
		Actor:    actor,
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listCustomersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

// UpdateMemberRole handles PATCH /team/members/:id/role
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.UpdateMemberRoleCommand{
		Actor:     actor,
		ProfileID: profileID,
		Role:      req.Role,
	}

	result, err := h.updateMemberRoleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member role updated successfully", result)
}

// DeactivateMember handles POST /team/members/:id/deactivate
func (h *TeamHandler) DeactivateMember(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.SetMemberStatusCommand{
		Actor:     actor,
		ProfileID: profileID,
	}

	if err := h.deactivateMemberUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member deactivated successfully", nil)
}

// ReactivateMember handles POST /team/members/:id/reactivate
func (h *TeamHandler) ReactivateMember(c *gin.Context) {
	profileID, err := parseProfileID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.SetMemberStatusCommand{
		Actor:     actor,
		ProfileID: profileID,
	}

	if err := h.reactivateMemberUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member reactivated successfully", nil)
}

// UpdateOrganization handles PATCH /organization
func (h *TeamHandler) UpdateOrganization(c *gin.Context) {
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.ActorFromContext(c)
	cmd := usecases.UpdateOrganizationCommand{
		Actor: actor,
		Name:  req.Name,
	}

	result, err := h.updateOrganizationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}

func parseProfileID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid member ID")
	}
	return uint(id), nil
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
