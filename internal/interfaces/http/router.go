package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine         *gin.Engine
	server         *http.Server
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	ticketHandler  *handlers.TicketHandler
	catalogHandler *handlers.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
	permMiddleware *middleware.PermissionMiddleware
	attachmentDir  string
	logger         logger.Interface
}

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	ticketHandler *handlers.TicketHandler,
	catalogHandler *handlers.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	permMiddleware *middleware.PermissionMiddleware,
	attachmentDir string,
	log logger.Interface,
) *Router {
	return &Router{
		engine:         gin.New(),
		authHandler:    authHandler,
		userHandler:    userHandler,
		ticketHandler:  ticketHandler,
		catalogHandler: catalogHandler,
		authMiddleware: authMiddleware,
		permMiddleware: permMiddleware,
		attachmentDir:  attachmentDir,
		logger:         log,
	}
}

// SetupRoutes wires middleware and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config) {
	if err := handlers.RegisterValidators(); err != nil {
		r.logger.Errorw("failed to register binding validators", "error", err)
	}

	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CustomLogger(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored attachments are served by their generated names.
	r.engine.Static("/arquivos", r.attachmentDir)

	r.setupAuthRoutes()
	r.setupUserRoutes()
	r.setupCatalogRoutes()
	r.setupTicketRoutes()
	r.setupPageRoutes()
}

func (r *Router) setupAuthRoutes() {
	auth := r.engine.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
	}
}

func (r *Router) setupUserRoutes() {
	users := r.engine.Group("/usuario")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("", r.permMiddleware.RequirePermission("usuario", "read"), r.userHandler.List)
		users.POST("", r.permMiddleware.RequirePermission("usuario", "create"), r.userHandler.Create)
		users.PUT("", r.permMiddleware.RequirePermission("usuario", "update"), r.userHandler.Update)
		users.DELETE("/:id", r.permMiddleware.RequirePermission("usuario", "delete"), r.userHandler.Delete)
	}
}

func (r *Router) setupCatalogRoutes() {
	// Route names preserve the original backend paths the clients call.
	read := r.permMiddleware.RequirePermission("catalogo", "read")
	r.engine.GET("/TipoChamado", r.authMiddleware.RequireAuth(), read, r.catalogHandler.ListTicketTypes)
	r.engine.GET("/StatusUsuario", r.authMiddleware.RequireAuth(), read, r.catalogHandler.ListUserTypes)
}

func (r *Router) setupTicketRoutes() {
	tickets := r.engine.Group("/chamado")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", r.permMiddleware.RequirePermission("chamado", "create"), r.ticketHandler.Create)
		// The unscoped list and the stats expose every user's tickets;
		// they sit behind the admin-only "list" action.
		tickets.GET("", r.permMiddleware.RequirePermission("chamado", "list"), r.ticketHandler.List)
		tickets.GET("/meus", r.permMiddleware.RequirePermission("chamado", "read"), r.ticketHandler.ListMine)
		tickets.GET("/stats", r.permMiddleware.RequirePermission("chamado", "list"), r.ticketHandler.Stats)
		tickets.GET("/:id", r.permMiddleware.RequirePermission("chamado", "read"), r.ticketHandler.Get)
		tickets.PUT("/:id", r.permMiddleware.RequirePermission("chamado", "update"), r.ticketHandler.Update)
		tickets.DELETE("/:id", r.permMiddleware.RequirePermission("chamado", "delete"), r.ticketHandler.Delete)
	}
}

// Engine exposes the underlying gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start runs the HTTP server until the context is cancelled, then drains
// in-flight requests.
func (r *Router) Start(ctx context.Context, addr string) error {
	r.server = &http.Server{
		Addr:              addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	r.logger.Infow("HTTP server started", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	r.logger.Info("shutting down HTTP server")
	return r.server.Shutdown(shutdownCtx)
}
