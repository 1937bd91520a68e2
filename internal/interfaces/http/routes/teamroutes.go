package routes

import (
	"github.com/gin-gonic/gin"

	teamhandlers "helpdesk/internal/interfaces/http/handlers/team"
	"helpdesk/internal/interfaces/http/middleware"
)

type TeamRouteConfig struct {
	TeamHandler     *teamhandlers.TeamHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ActorMiddleware *middleware.ActorMiddleware
}

func SetupTeamRoutes(engine *gin.Engine, config *TeamRouteConfig) {
	authed := []gin.HandlerFunc{
		config.AuthMiddleware.RequireAuth(),
		config.ActorMiddleware.RequireMember(),
	}

	team := engine.Group("/api/v1/team")
	team.Use(authed...)
	{
		team.GET("/members", config.TeamHandler.ListMembers)
		team.GET("/customers", config.TeamHandler.ListCustomers)
		team.PATCH("/members/:id/role", config.TeamHandler.UpdateMemberRole)
		team.POST("/members/:id/deactivate", config.TeamHandler.DeactivateMember)
		team.POST("/members/:id/reactivate", config.TeamHandler.ReactivateMember)
	}

	organization := engine.Group("/api/v1/organization")
	organization.Use(authed...)
	{
		organization.PATCH("", config.TeamHandler.UpdateOrganization)
	}
}
