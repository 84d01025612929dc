package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID uint
	Nome   string
	Email  string
	// Senha left blank means the password stays unchanged.
	Senha  string
	TipoID uint
}

type UpdateUserUseCase struct {
	userRepo    user.Repository
	catalogRepo catalog.Repository
	hasher      user.PasswordHasher
	logger      logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("usuário não encontrado")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to get user")
	}

	nome, err := vo.NewName(cmd.Nome)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if email.String() != existing.Email().String() {
		conflict, err := uc.userRepo.GetByEmail(ctx, email.String())
		if err != nil && !errors.IsNotFound(err) {
			uc.logger.Errorw("failed to check email uniqueness", "error", err)
			return nil, errors.NewInternalError("failed to check email")
		}
		if conflict != nil && conflict.ID() != existing.ID() {
			return nil, errors.NewConflictError("email já cadastrado")
		}
	}

	tipo, err := uc.catalogRepo.GetUserType(ctx, cmd.TipoID)
	if err != nil {
		return nil, errors.NewValidationError("tipo de usuário inválido")
	}

	if err := existing.UpdateName(nome); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.UpdateEmail(email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.ChangeTipo(tipo.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Senha != "" {
		senha, err := vo.NewPassword(cmd.Senha)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		hash, err := uc.hasher.Hash(senha.String())
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := existing.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", existing.ID())
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", existing.ID(), "password_changed", cmd.Senha != "")

	return &dto.UserDTO{
		ID:    existing.ID(),
		UUID:  existing.UUID(),
		Nome:  existing.Name().String(),
		Email: existing.Email().String(),
		Role:  existing.Role().String(),
		Tipo:  dto.TipoDTO{ID: tipo.ID, Status: tipo.Status},
	}, nil
}
