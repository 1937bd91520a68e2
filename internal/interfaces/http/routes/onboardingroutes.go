package routes

import (
	"github.com/gin-gonic/gin"

	onboardinghandlers "helpdesk/internal/interfaces/http/handlers/onboarding"
	"helpdesk/internal/interfaces/http/middleware"
)

type OnboardingRouteConfig struct {
	OnboardingHandler *onboardinghandlers.OnboardingHandler
	AuthMiddleware    *middleware.AuthMiddleware
	// CodeAttemptLimit throttles the public code endpoints; nil disables.
	CodeAttemptLimit gin.HandlerFunc
}

func SetupOnboardingRoutes(engine *gin.Engine, config *OnboardingRouteConfig) {
	// Public endpoints: code probes and the customer login exchange.
	public := engine.Group("/api/v1")
	if config.CodeAttemptLimit != nil {
		public.Use(config.CodeAttemptLimit)
	}
	{
		public.POST("/auth/customer/login", config.OnboardingHandler.CustomerLogin)
		public.GET("/onboarding/invitations/:token", config.OnboardingHandler.ValidateInvitation)
		public.GET("/onboarding/ticket-codes/:code", config.OnboardingHandler.ValidateTicketCode)
	}

	// Authenticated onboarding: requires a verified token but no profile,
	// since these endpoints are how the profile comes to exist.
	onboarding := engine.Group("/api/v1/onboarding")
	onboarding.Use(config.AuthMiddleware.RequireAuth())
	{
		onboarding.GET("/state", config.OnboardingHandler.GetState)
		onboarding.POST("/organizations", config.OnboardingHandler.CreateOrganization)
		onboarding.POST("/join/invitation", config.OnboardingHandler.JoinByInvitation)
		onboarding.POST("/join/ticket", config.OnboardingHandler.JoinByTicket)
	}
}
