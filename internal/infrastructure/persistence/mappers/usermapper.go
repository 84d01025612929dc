package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// UserMapper converts between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	SessionToModel(s *user.Session) *models.SessionModel
	SessionToDomain(model *models.SessionModel) *user.Session
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		UUID:         u.UUID(),
		Nome:         u.Name().String(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		TipoID:       u.TipoID(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	nome, err := vo.NewName(model.Nome)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user nome (id=%d): %w", model.ID, err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user email (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.UUID,
		nome,
		email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.TipoID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		TokenHash: s.TokenHash,
		ExpiresAt: s.ExpiresAt.UnixMilli(),
		CreatedAt: s.CreatedAt.UnixMilli(),
	}
}

func (m *UserMapperImpl) SessionToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		TokenHash: model.TokenHash,
		ExpiresAt: millisToTime(model.ExpiresAt),
		CreatedAt: millisToTime(model.CreatedAt),
	}
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
