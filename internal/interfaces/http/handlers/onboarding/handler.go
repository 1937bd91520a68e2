package onboarding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/onboarding/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// OnboardingHandler exposes the identity onboarding endpoints: creating
// an organization, joining by invitation or ticket code, the customer
// login exchange, and the public code validation probes.
type OnboardingHandler struct {
	createOrganizationUC usecases.CreateOrganizationExecutor
	joinByInvitationUC   usecases.JoinByInvitationExecutor
	joinByTicketUC       usecases.JoinByTicketExecutor
	customerLoginUC      usecases.CustomerLoginExecutor
	validateInvitationUC usecases.ValidateInvitationExecutor
	validateTicketCodeUC usecases.ValidateTicketCodeExecutor
	onboardingStateUC    usecases.GetOnboardingStateExecutor
	logger               logger.Interface
}

func NewOnboardingHandler(
	createOrganizationUC usecases.CreateOrganizationExecutor,
	joinByInvitationUC usecases.JoinByInvitationExecutor,
	joinByTicketUC usecases.JoinByTicketExecutor,
	customerLoginUC usecases.CustomerLoginExecutor,
	validateInvitationUC usecases.ValidateInvitationExecutor,
	validateTicketCodeUC usecases.ValidateTicketCodeExecutor,
	onboardingStateUC usecases.GetOnboardingStateExecutor,
) *OnboardingHandler {
	return &OnboardingHandler{
		createOrganizationUC: createOrganizationUC,
		joinByInvitationUC:   joinByInvitationUC,
		joinByTicketUC:       joinByTicketUC,
		customerLoginUC:      customerLoginUC,
		validateInvitationUC: validateInvitationUC,
		validateTicketCodeUC: validateTicketCodeUC,
		onboardingStateUC:    onboardingStateUC,
		logger:               logger.NewLogger(),
	}
}

// GetState handles GET /onboarding/state
func (h *OnboardingHandler) GetState(c *gin.Context) {
	query := usecases.GetOnboardingStateQuery{
		Subject: middleware.SubjectFromContext(c),
	}

	result, err := h.onboardingStateUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateOrganization handles POST /onboarding/organizations
func (h *OnboardingHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create organization", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateOrganizationCommand{
		Subject:          middleware.SubjectFromContext(c),
		Email:            middleware.EmailFromContext(c),
		FullName:         middleware.FullNameFromContext(c),
		OrganizationName: req.OrganizationName,
	}

	result, err := h.createOrganizationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created successfully")
}

// JoinByInvitation handles POST /onboarding/join/invitation
func (h *OnboardingHandler) JoinByInvitation(c *gin.Context) {
	var req JoinByInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.JoinByInvitationCommand{
		Subject:  middleware.SubjectFromContext(c),
		Email:    middleware.EmailFromContext(c),
		FullName: middleware.FullNameFromContext(c),
		Token:    req.Token,
	}

	result, err := h.joinByInvitationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Joined organization successfully", result)
}

// JoinByTicket handles POST /onboarding/join/ticket
func (h *OnboardingHandler) JoinByTicket(c *gin.Context) {
	var req JoinByTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.JoinByTicketCommand{
		Subject:    middleware.SubjectFromContext(c),
		Email:      middleware.EmailFromContext(c),
		FullName:   middleware.FullNameFromContext(c),
		TicketCode: req.TicketCode,
	}

	result, err := h.joinByTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Joined ticket successfully", result)
}

// CustomerLogin handles POST /auth/customer/login. Public endpoint; the
// ticket code plus full name pair is the credential.
func (h *OnboardingHandler) CustomerLogin(c *gin.Context) {
	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CustomerLoginCommand{
		TicketCode: req.TicketCode,
		FullName:   req.FullName,
	}

	result, err := h.customerLoginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateInvitation handles GET /onboarding/invitations/:token
func (h *OnboardingHandler) ValidateInvitation(c *gin.Context) {
	query := usecases.ValidateInvitationQuery{
		Token: c.Param("token"),
	}

	result, err := h.validateInvitationUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateTicketCode handles GET /onboarding/ticket-codes/:code
func (h *OnboardingHandler) ValidateTicketCode(c *gin.Context) {
	query := usecases.ValidateTicketCodeQuery{
		Code: c.Param("code"),
	}

	result, err := h.validateTicketCodeUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
