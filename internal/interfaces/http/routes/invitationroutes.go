package routes

import (
	"github.com/gin-gonic/gin"

	invitationhandlers "helpdesk/internal/interfaces/http/handlers/invitation"
	"helpdesk/internal/interfaces/http/middleware"
)

type InvitationRouteConfig struct {
	InvitationHandler *invitationhandlers.InvitationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ActorMiddleware   *middleware.ActorMiddleware
}

func SetupInvitationRoutes(engine *gin.Engine, config *InvitationRouteConfig) {
	invitations := engine.Group("/api/v1/invitations")
	invitations.Use(config.AuthMiddleware.RequireAuth(), config.ActorMiddleware.RequireMember())
	{
		invitations.POST("", config.InvitationHandler.CreateInvitation)
		invitations.GET("", config.InvitationHandler.ListInvitations)
		invitations.DELETE("/:id", config.InvitationHandler.RevokeInvitation)
	}
}
