package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	catalogApp "helpdesk/internal/application/catalog"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	domaincatalog "helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/infrastructure/storage"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

var (
	env           string
	rbacModelPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the help desk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVar(&rbacModelPath, "rbac-model", "./configs/rbac_model.conf", "Path to the casbin RBAC model file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db := database.Get()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	var catalogRepo domaincatalog.Repository = repository.NewCatalogRepository(db)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		catalogRepo = cache.NewCachedCatalogRepository(catalogRepo, redisClient, 10*time.Minute, log.Named("cache"))
		log.Info("catalog cache enabled")
	}

	enforcer, err := permission.NewEnforcer(db, rbacModelPath, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	fileStore, err := storage.NewLocalFileStore(cfg.Storage, log.Named("storage"))
	if err != nil {
		return fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	textSanitizer := sanitizer.NewStrictSanitizer()
	notifier := email.NewSMTPNotifier(cfg.Email, cfg.Server.BaseURL, log.Named("email"))

	authHandler := handlers.NewAuthHandler(
		userUsecases.NewLoginUseCase(userRepo, sessionRepo, catalogRepo, hasher, jwtService, cfg.Auth.Session, log),
		userUsecases.NewLogoutUseCase(sessionRepo, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userUsecases.NewCreateUserUseCase(userRepo, catalogRepo, hasher, log),
		userUsecases.NewUpdateUserUseCase(userRepo, catalogRepo, hasher, log),
		userUsecases.NewDeleteUserUseCase(userRepo, sessionRepo, log),
		userUsecases.NewListUsersUseCase(userRepo, catalogRepo, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, userRepo, catalogRepo, fileStore, textSanitizer, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, userRepo, catalogRepo, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, userRepo, catalogRepo, log),
		ticketUsecases.NewListMyTicketsUseCase(ticketRepo, userRepo, catalogRepo, log),
		ticketUsecases.NewUpdateTicketUseCase(ticketRepo, userRepo, catalogRepo, textSanitizer, notifier, log),
		ticketUsecases.NewDeleteTicketUseCase(ticketRepo, fileStore, log),
		ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log),
		log,
	)

	catalogHandler := handlers.NewCatalogHandler(catalogApp.NewService(catalogRepo, log), log)

	router := httpRouter.NewRouter(
		authHandler,
		userHandler,
		ticketHandler,
		catalogHandler,
		middleware.NewAuthMiddleware(jwtService, sessionRepo, log),
		middleware.NewPermissionMiddleware(enforcer, log),
		fileStore.Dir(),
		log,
	)
	router.SetupRoutes(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := router.Start(ctx, cfg.Server.GetAddr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
