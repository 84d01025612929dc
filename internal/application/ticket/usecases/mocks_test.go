package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc         func(ctx context.Context, ticketID uint) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByUUIDFunc      func(ctx context.Context, uuid string) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetUserTicketsFunc func(ctx context.Context, usuarioID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc  func(ctx context.Context) (*ticket.StatusCounts, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetUserTickets(ctx context.Context, usuarioID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetUserTicketsFunc != nil {
		return m.GetUserTicketsFunc(ctx, usuarioID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (*ticket.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return &ticket.StatusCounts{}, nil
}

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
	return &catalog.TicketType{ID: id, Nome: "Hardware"}, nil
}

func (m *mockCatalogRepository) GetUserType(ctx context.Context, id uint) (*catalog.UserType, error) {
	if m.GetUserTypeFunc != nil {
		return m.GetUserTypeFunc(ctx, id)
	}
	return &catalog.UserType{ID: id, Status: "TI"}, nil
}

type mockAttachmentStore struct {
	StoreFunc  func(ctx context.Context, upload FileUpload) (*StoredFile, error)
	RemoveFunc func(ctx context.Context, storedName string) error
}

func (m *mockAttachmentStore) Store(ctx context.Context, upload FileUpload) (*StoredFile, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, upload)
	}
	return &StoredFile{StoredName: "stored-" + upload.FileName, Link: "/arquivos/stored-" + upload.FileName}, nil
}

func (m *mockAttachmentStore) Remove(ctx context.Context, storedName string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, storedName)
	}
	return nil
}

type mockSanitizer struct {
	SanitizeFunc func(s string) string
}

func (m *mockSanitizer) Sanitize(s string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(s)
	}
	return s
}

type mockAssignmentNotifier struct {
	NotifyAssignmentFunc func(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error
}

func (m *mockAssignmentNotifier) NotifyAssignment(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error {
	if m.NotifyAssignmentFunc != nil {
		return m.NotifyAssignmentFunc(ctx, toEmail, toName, ticketNome, ticketID)
	}
	return nil
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
