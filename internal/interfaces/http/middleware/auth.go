package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AccessTokenCookie is the cookie browsers carry the access token in; API
// clients use the Authorization header instead.
const AccessTokenCookie = "access_token"

type AuthMiddleware struct {
	jwtService  *auth.JWTService
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, sessionRepo user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// RequireAuth verifies the access token and checks that the session it was
// issued for still exists, is not expired, and is still bound to this exact
// token. Logout deletes the session row, so revoked tokens fail here even
// before their JWT expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		session, err := m.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session revoked")
			c.Abort()
			return
		}

		if session.IsExpired() || session.TokenHash != user.HashToken(token) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Set(constants.ContextKeySessionID, session.ID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// OptionalAuth populates the auth context when a valid token is present and
// stays silent otherwise. Page shell routes use it so guards can redirect
// instead of answering 401.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		session, err := m.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil || session.IsExpired() || session.TokenHash != user.HashToken(token) {
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Set(constants.ContextKeySessionID, session.ID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
