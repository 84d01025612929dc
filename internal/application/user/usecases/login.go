package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email string
	Senha string
}

// LoginResult carries everything a client persists for the session:
// the fields of the stored session object plus the landing route for the
// user's role.
type LoginResult struct {
	ID        uint
	UUID      string
	Nome      string
	Email     string
	Role      string
	Tipo      string
	Token     string
	ExpiresIn int64
	HomeRoute string
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	catalogRepo catalog.Repository
	hasher      user.PasswordHasher
	jwtService  JWTService
	sessionCfg  config.SessionConfig
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	catalogRepo catalog.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	sessionCfg config.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		sessionCfg:  sessionCfg,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.IsNotFound(err) {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	// Generic error either way: the response must not reveal whether the
	// email exists.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	if err := existing.VerifyPassword(cmd.Senha, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	expiresAt := time.Now().UTC().Add(time.Duration(uc.sessionCfg.ExpHours) * time.Hour)
	session, err := user.NewSession(existing.ID(), expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	token, expiresIn, err := uc.jwtService.Generate(existing.UUID(), session.ID, existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to sign token", "error", err)
		return nil, errors.NewInternalError("failed to sign token")
	}

	session.BindToken(token)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err)
		return nil, errors.NewInternalError("failed to save session")
	}

	tipoLabel := ""
	if tipo, err := uc.catalogRepo.GetUserType(ctx, existing.TipoID()); err == nil {
		tipoLabel = tipo.Status
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role().String())

	return &LoginResult{
		ID:        existing.ID(),
		UUID:      existing.UUID(),
		Nome:      existing.Name().String(),
		Email:     existing.Email().String(),
		Role:      existing.Role().String(),
		Tipo:      tipoLabel,
		Token:     token,
		ExpiresIn: expiresIn,
		HomeRoute: existing.Role().HomeRoute(),
	}, nil
}
