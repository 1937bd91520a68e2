package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the token identity on
// the context. It does not load a profile; use ActorMiddleware for
// routes that need an organization member.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySubject, claims.Subject)
		c.Set(constants.ContextKeyEmail, claims.Email)
		c.Set(constants.ContextKeyFullName, claims.FullName)

		c.Next()
	}
}

// SubjectFromContext returns the verified token subject.
func SubjectFromContext(c *gin.Context) string {
	subject, _ := c.Get(constants.ContextKeySubject)
	s, _ := subject.(string)
	return s
}

// EmailFromContext returns the email claim of the verified token.
func EmailFromContext(c *gin.Context) string {
	email, _ := c.Get(constants.ContextKeyEmail)
	s, _ := email.(string)
	return s
}

// FullNameFromContext returns the full name claim of the verified token.
func FullNameFromContext(c *gin.Context) string {
	name, _ := c.Get(constants.ContextKeyFullName)
	s, _ := name.(string)
	return s
}
