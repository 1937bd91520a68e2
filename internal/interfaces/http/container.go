package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	invitationUC "helpdesk/internal/application/invitation/usecases"
	onboardingUC "helpdesk/internal/application/onboarding/usecases"
	teamUC "helpdesk/internal/application/team/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	invitationhandlers "helpdesk/internal/interfaces/http/handlers/invitation"
	onboardinghandlers "helpdesk/internal/interfaces/http/handlers/onboarding"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	teamhandlers "helpdesk/internal/interfaces/http/handlers/team"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/content"
)

// Container wires repositories, use cases, and handlers for the HTTP
// layer. Everything hangs off the gorm handle and the loaded config.
type Container struct {
	OnboardingHandler *onboardinghandlers.OnboardingHandler
	TicketHandler     *tickethandlers.TicketHandler
	InvitationHandler *invitationhandlers.InvitationHandler
	TeamHandler       *teamhandlers.TeamHandler

	AuthMiddleware  *middleware.AuthMiddleware
	ActorMiddleware *middleware.ActorMiddleware
	RateLimiter     ratelimit.RateLimiter
}

func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	// Infrastructure services.
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.Issuer,
		cfg.Auth.JWT.AccessExpMinutes,
	)
	contentService := content.NewService()
	txMgr := db.NewTransactionManager(database)

	var limiter ratelimit.RateLimiter = ratelimit.NewNoopRateLimiter()
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(client)
	}

	// Repositories.
	orgRepo := repository.NewOrganizationRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	invitationRepo := repository.NewInvitationRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	activityRepo := repository.NewActivityRepository(database)

	// Onboarding use cases.
	onboardingHandler := onboardinghandlers.NewOnboardingHandler(
		onboardingUC.NewCreateOrganizationUseCase(orgRepo, profileRepo, txMgr, log),
		onboardingUC.NewJoinByInvitationUseCase(invitationRepo, profileRepo, txMgr, log),
		onboardingUC.NewJoinByTicketUseCase(ticketRepo, profileRepo, txMgr, log),
		onboardingUC.NewCustomerLoginUseCase(ticketRepo, profileRepo, jwtService, txMgr, log),
		onboardingUC.NewValidateInvitationUseCase(invitationRepo, orgRepo, log),
		onboardingUC.NewValidateTicketCodeUseCase(ticketRepo, orgRepo, log),
		onboardingUC.NewGetOnboardingStateUseCase(profileRepo, orgRepo, log),
	)

	// Ticket use cases.
	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, activityRepo, txMgr, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, activityRepo, txMgr, log),
		ticketUC.NewChangeStatusUseCase(ticketRepo, activityRepo, txMgr, log),
		ticketUC.NewChangePriorityUseCase(ticketRepo, activityRepo, txMgr, log),
		ticketUC.NewAssignTicketUseCase(ticketRepo, profileRepo, activityRepo, txMgr, log),
		ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, activityRepo, contentService, txMgr, log),
		ticketUC.NewListCommentsUseCase(ticketRepo, commentRepo, contentService, log),
		ticketUC.NewListActivityUseCase(ticketRepo, activityRepo, log),
		ticketUC.NewGetTicketStatsUseCase(ticketRepo, log),
		ticketUC.NewGenerateTicketCodeUseCase(ticketRepo, log),
	)

	// Invitation use cases.
	invitationHandler := invitationhandlers.NewInvitationHandler(
		invitationUC.NewCreateInvitationUseCase(invitationRepo, cfg.Onboarding.InvitationExpiryDays, log),
		invitationUC.NewListInvitationsUseCase(invitationRepo, log),
		invitationUC.NewRevokeInvitationUseCase(invitationRepo, log),
	)

	// Team administration use cases.
	teamHandler := teamhandlers.NewTeamHandler(
		teamUC.NewListMembersUseCase(profileRepo, log),
		teamUC.NewListCustomersUseCase(profileRepo, log),
		teamUC.NewUpdateMemberRoleUseCase(profileRepo, log),
		teamUC.NewDeactivateMemberUseCase(profileRepo, log),
		teamUC.NewReactivateMemberUseCase(profileRepo, log),
		teamUC.NewUpdateOrganizationUseCase(orgRepo, log),
	)

	return &Container{
		OnboardingHandler: onboardingHandler,
		TicketHandler:     ticketHandler,
		InvitationHandler: invitationHandler,
		TeamHandler:       teamHandler,
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		ActorMiddleware:   middleware.NewActorMiddleware(profileRepo, log),
		RateLimiter:       limiter,
	}
}
