package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ActorMiddleware *middleware.ActorMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/v1/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), config.ActorMiddleware.RequireMember())
	{
		// Register specific paths before parameterized ones to avoid
		// route conflicts.
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/stats", config.TicketHandler.GetStats)

		tickets.POST("/:id/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/code", config.TicketHandler.GenerateCode)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.GET("/:id/activity", config.TicketHandler.ListActivity)
		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/priority", config.TicketHandler.ChangePriority)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
