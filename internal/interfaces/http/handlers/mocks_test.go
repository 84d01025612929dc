package handlers

import (
	"context"

	ticketdto "helpdesk/internal/application/ticket/dto"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userdto "helpdesk/internal/application/user/dto"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
)

type mockLoginExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd userusecases.LoginCommand) (*userusecases.LoginResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd userusecases.LoginCommand) (*userusecases.LoginResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLogoutExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd userusecases.LogoutCommand) error
}

func (m *mockLogoutExecutor) Execute(ctx context.Context, cmd userusecases.LogoutCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCreateUserExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd userusecases.CreateUserCommand) (*userdto.UserDTO, error)
}

func (m *mockCreateUserExecutor) Execute(ctx context.Context, cmd userusecases.CreateUserCommand) (*userdto.UserDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListUsersExecutor struct {
	ExecuteFunc func(ctx context.Context, query userusecases.ListUsersQuery) (*userusecases.ListUsersResult, error)
}

func (m *mockListUsersExecutor) Execute(ctx context.Context, query userusecases.ListUsersQuery) (*userusecases.ListUsersResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockCreateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketdto.ChamadoDTO, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketdto.ChamadoDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.ChamadoDTO, error)
}

func (m *mockGetTicketExecutor) Execute(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.ChamadoDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockUpdateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketdto.ChamadoDTO, error)
}

func (m *mockUpdateTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketdto.ChamadoDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
