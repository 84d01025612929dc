package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Nome  string
	Email string
	Tipo  string
}

type ListUsersResult struct {
	Users []dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	filter := user.Filter{
		Nome:  query.Nome,
		Email: query.Email,
		Tipo:  query.Tipo,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	// Resolve tipo labels once; the catalog is tiny and immutable.
	tipos := map[uint]string{}
	if userTypes, err := uc.catalogRepo.ListUserTypes(ctx); err == nil {
		for _, ut := range userTypes {
			tipos[ut.ID] = ut.Status
		}
	}

	result := &ListUsersResult{
		Users: make([]dto.UserDTO, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		result.Users = append(result.Users, dto.UserDTO{
			ID:    u.ID(),
			UUID:  u.UUID(),
			Nome:  u.Name().String(),
			Email: u.Email().String(),
			Role:  u.Role().String(),
			Tipo:  dto.TipoDTO{ID: u.TipoID(), Status: tipos[u.TipoID()]},
		})
	}
	return result, nil
}
