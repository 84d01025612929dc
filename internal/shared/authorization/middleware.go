package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// RequireRole gates a page-route group on the session role. Unauthenticated
// requests go to the login route; authenticated requests with the wrong role
// are sent to the fallback route (the other role's landing page). A single
// parametrized guard replaces per-role variants.
func RequireRole(role UserRole, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			c.Redirect(http.StatusFound, LoginRoute)
			c.Abort()
			return
		}

		if UserRole(userRole.(string)) != role {
			c.Redirect(http.StatusFound, fallback)
			c.Abort()
			return
		}

		c.Next()
	}
}
