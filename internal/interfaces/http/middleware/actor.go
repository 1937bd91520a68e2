package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/common"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ActorMiddleware resolves the token subject to an organization member.
// Runs after AuthMiddleware.RequireAuth.
type ActorMiddleware struct {
	profileRepo identity.ProfileRepository
	logger      logger.Interface
}

func NewActorMiddleware(profileRepo identity.ProfileRepository, logger logger.Interface) *ActorMiddleware {
	return &ActorMiddleware{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// RequireMember rejects requests whose subject has no active profile
// bound to an organization. Callers with a pending profile are told to
// finish onboarding instead.
func (m *ActorMiddleware) RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := SubjectFromContext(c)
		if subject == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated subject")
			c.Abort()
			return
		}

		profile, err := m.profileRepo.FindBySubject(c.Request.Context(), subject)
		if err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusForbidden, "onboarding required")
				c.Abort()
				return
			}
			m.logger.Errorw("failed to load profile", "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if profile.IsPending() {
			utils.ErrorResponse(c, http.StatusForbidden, "onboarding required")
			c.Abort()
			return
		}

		if !profile.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "profile is deactivated")
			c.Abort()
			return
		}

		actor := common.Actor{
			ProfileID:      profile.ID(),
			OrganizationID: *profile.OrganizationID(),
			Role:           profile.Role(),
			TicketCode:     profile.TicketCode(),
		}

		c.Set(constants.ContextKeyProfile, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor stored by RequireMember.
func ActorFromContext(c *gin.Context) (common.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyProfile)
	if !exists {
		return common.Actor{}, false
	}
	actor, ok := value.(common.Actor)
	return actor, ok
}
