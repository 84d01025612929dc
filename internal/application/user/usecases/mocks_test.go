package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, userID uint) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByUUIDFunc  func(ctx context.Context, uuid string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc       func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, uuid string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockSessionRepository struct {
	SaveFunc           func(ctx context.Context, s *user.Session) error
	GetByIDFunc        func(ctx context.Context, sessionID string) (*user.Session, error)
	DeleteFunc         func(ctx context.Context, sessionID string) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockSessionRepository) Save(ctx context.Context, s *user.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockCatalogRepository struct {
	ListTicketTypesFunc func(ctx context.Context) ([]*catalog.TicketType, error)
	ListUserTypesFunc   func(ctx context.Context) ([]*catalog.UserType, error)
	GetTicketTypeFunc   func(ctx context.Context, id uint) (*catalog.TicketType, error)
	GetUserTypeFunc     func(ctx context.Context, id uint) (*catalog.UserType, error)
}

func (m *mockCatalogRepository) ListTicketTypes(ctx context.Context) ([]*catalog.TicketType, error) {
	if m.ListTicketTypesFunc != nil {
		return m.ListTicketTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListUserTypes(ctx context.Context) ([]*catalog.UserType, error) {
	if m.ListUserTypesFunc != nil {
		return m.ListUserTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetTicketType(ctx context.Context, id uint) (*catalog.TicketType, error) {
	if m.GetTicketTypeFunc != nil {
		return m.GetTicketTypeFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetUserType(ctx context.Context, id uint) (*catalog.UserType, error) {
	if m.GetUserTypeFunc != nil {
		return m.GetUserTypeFunc(ctx, id)
	}
	return &catalog.UserType{ID: id, Status: "TI"}, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userUUID string, sessionID string, role authorization.UserRole) (string, int64, error)
}

func (m *mockJWTService) Generate(userUUID string, sessionID string, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userUUID, sessionID, role)
	}
	return "token", 3600, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
