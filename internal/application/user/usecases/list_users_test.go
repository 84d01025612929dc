package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
)

func TestListUsersUseCase_Execute(t *testing.T) {
	t.Run("passes filter through and resolves tipo labels", func(t *testing.T) {
		var gotFilter user.Filter
		mockUsers := &mockUserRepository{
			ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
				gotFilter = filter
				return []*user.User{
					newTestUser(t, 1, authorization.RoleAdmin),
					newTestUser(t, 2, authorization.RoleClient),
				}, 2, nil
			},
		}
		mockCatalog := &mockCatalogRepository{
			ListUserTypesFunc: func(ctx context.Context) ([]*catalog.UserType, error) {
				return []*catalog.UserType{
					{ID: 1, Status: "TI"},
					{ID: 2, Status: "UBS"},
					{ID: 3, Status: "LAB"},
				}, nil
			},
		}

		useCase := NewListUsersUseCase(mockUsers, mockCatalog, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListUsersQuery{Nome: "maria", Tipo: "UBS"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, user.Filter{Nome: "maria", Tipo: "UBS"}, gotFilter)
		assert.Equal(t, int64(2), result.Total)
		require.Len(t, result.Users, 2)
		assert.Equal(t, "UBS", result.Users[0].Tipo.Status)
	})

	t.Run("empty result", func(t *testing.T) {
		mockUsers := &mockUserRepository{
			ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
				return nil, 0, nil
			},
		}

		useCase := NewListUsersUseCase(mockUsers, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListUsersQuery{})

		require.NoError(t, err)
		assert.Empty(t, result.Users)
		assert.Zero(t, result.Total)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockUsers := &mockUserRepository{
			ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
				return nil, 0, apperrors.NewInternalError("db down")
			},
		}

		useCase := NewListUsersUseCase(mockUsers, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListUsersQuery{})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
