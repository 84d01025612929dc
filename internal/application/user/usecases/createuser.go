package usecases

import (
	"context"

	"github.com/google/uuid"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Nome   string
	Email  string
	Senha  string
	TipoID uint
	Role   string
}

type CreateUserUseCase struct {
	userRepo    user.Repository
	catalogRepo catalog.Repository
	hasher      user.PasswordHasher
	logger      logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	nome, err := vo.NewName(cmd.Nome)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	senha, err := vo.NewPassword(cmd.Senha)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tipo, err := uc.catalogRepo.GetUserType(ctx, cmd.TipoID)
	if err != nil {
		return nil, errors.NewValidationError("tipo de usuário inválido")
	}

	role := authorization.RoleClient
	if cmd.Role != "" {
		role = authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil && !errors.IsNotFound(err) {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to check email")
	}
	if existing != nil {
		return nil, errors.NewConflictError("email já cadastrado")
	}

	hash, err := uc.hasher.Hash(senha.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(uuid.NewString(), nome, email, hash, role, tipo.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "tipo", tipo.Status)

	return &dto.UserDTO{
		ID:    newUser.ID(),
		UUID:  newUser.UUID(),
		Nome:  newUser.Name().String(),
		Email: newUser.Email().String(),
		Role:  newUser.Role().String(),
		Tipo:  dto.TipoDTO{ID: tipo.ID, Status: tipo.Status},
	}, nil
}
