package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
	// ActorID is the user performing the deletion; a user cannot delete
	// their own account while logged into it.
	ActorID uint
}

type DeleteUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("não é possível excluir o próprio usuário")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NewNotFoundError("usuário não encontrado")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to get user")
	}

	// Revoke every live session first so removal also logs the user out.
	if err := uc.sessionRepo.DeleteByUserID(ctx, existing.ID()); err != nil && !errors.IsNotFound(err) {
		uc.logger.Errorw("failed to revoke sessions", "error", err, "user_id", existing.ID())
		return errors.NewInternalError("failed to revoke sessions")
	}

	if err := uc.userRepo.Delete(ctx, existing.ID()); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", existing.ID())
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted", "user_id", existing.ID())
	return nil
}
