package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

// Router assembles the gin engine with all middleware and routes.
type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
	logger    logger.Interface
}

func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine:    engine,
		container: NewContainer(database, cfg, log),
		cfg:       cfg,
		logger:    log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var codeAttemptLimit gin.HandlerFunc
	if r.cfg.Onboarding.CodeAttemptsPerMinute > 0 {
		codeAttemptLimit = middleware.CodeAttemptLimit(
			r.container.RateLimiter,
			r.cfg.Onboarding.CodeAttemptsPerMinute,
			r.logger,
		)
	}

	routes.SetupOnboardingRoutes(r.engine, &routes.OnboardingRouteConfig{
		OnboardingHandler: r.container.OnboardingHandler,
		AuthMiddleware:    r.container.AuthMiddleware,
		CodeAttemptLimit:  codeAttemptLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:   r.container.TicketHandler,
		AuthMiddleware:  r.container.AuthMiddleware,
		ActorMiddleware: r.container.ActorMiddleware,
	})

	routes.SetupInvitationRoutes(r.engine, &routes.InvitationRouteConfig{
		InvitationHandler: r.container.InvitationHandler,
		AuthMiddleware:    r.container.AuthMiddleware,
		ActorMiddleware:   r.container.ActorMiddleware,
	})

	routes.SetupTeamRoutes(r.engine, &routes.TeamRouteConfig{
		TeamHandler:     r.container.TeamHandler,
		AuthMiddleware:  r.container.AuthMiddleware,
		ActorMiddleware: r.container.ActorMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
