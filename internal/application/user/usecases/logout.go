package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewValidationError("session ID is required")
	}

	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		// A missing session means the token already stopped working;
		// logout stays idempotent.
		if errors.IsNotFound(err) {
			return nil
		}
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", cmd.SessionID)
		return errors.NewInternalError("failed to delete session")
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)
	return nil
}
