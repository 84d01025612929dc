package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
)

// setupPageRoutes registers the page shell routes the frontend is served
// from. Guards redirect: unauthenticated visitors go to /login, and a user
// landing on the other role's pages is sent to their own home route.
func (r *Router) setupPageRoutes() {
	optional := r.authMiddleware.OptionalAuth()

	r.engine.GET("/", optional, func(c *gin.Context) {
		role, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			c.Redirect(http.StatusFound, authorization.LoginRoute)
			return
		}
		c.Redirect(http.StatusFound, authorization.UserRole(role.(string)).HomeRoute())
	})

	r.engine.GET(authorization.LoginRoute, optional, func(c *gin.Context) {
		// An authenticated visitor skips the login page.
		if role, exists := c.Get(constants.ContextKeyUserRole); exists {
			c.Redirect(http.StatusFound, authorization.UserRole(role.(string)).HomeRoute())
			return
		}
		servePage(c, "login")
	})

	admin := r.engine.Group("/admin", optional,
		authorization.RequireRole(authorization.RoleAdmin, authorization.ClientHomeRoute))
	{
		admin.GET("/dashboard", pageHandler("admin-dashboard"))
		admin.GET("/chamados", pageHandler("admin-chamados"))
		admin.GET("/chamados/:id", pageHandler("admin-chamado"))
		admin.GET("/usuarios", pageHandler("admin-usuarios"))
	}

	cliente := r.engine.Group("/cliente", optional,
		authorization.RequireRole(authorization.RoleClient, authorization.AdminHomeRoute))
	{
		cliente.GET("/novo-chamado", pageHandler("cliente-novo-chamado"))
		cliente.GET("/chamados", pageHandler("cliente-chamados"))
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "página não encontrada"})
	})
}

func pageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		servePage(c, name)
	}
}

// servePage answers with the page identifier; the SPA build replaces this
// with the actual asset serving in deployment.
func servePage(c *gin.Context, name string) {
	c.JSON(http.StatusOK, gin.H{"page": name})
}
