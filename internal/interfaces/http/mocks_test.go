package http

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

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

type stubSessionRepo struct {
	sessions map[string]*user.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*user.Session{}}
}

func (r *stubSessionRepo) Save(ctx context.Context, s *user.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *stubSessionRepo) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("sessão não encontrada")
	}
	return s, nil
}

func (r *stubSessionRepo) Delete(ctx context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *stubSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

// issueToken creates a session bound to a fresh access token, the same way
// the login usecase does, so middleware checks pass for it.
func issueToken(t *testing.T, jwtSvc *auth.JWTService, sessions *stubSessionRepo, userID uint, role authorization.UserRole) string {
	t.Helper()

	session, err := user.NewSession(userID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	token, _, err := jwtSvc.Generate("test-user-uuid", session.ID, role)
	require.NoError(t, err)

	session.BindToken(token)
	sessions.sessions[session.ID] = session

	return token
}

func newTestAuthStack(t *testing.T) (*middleware.AuthMiddleware, *auth.JWTService, *stubSessionRepo) {
	t.Helper()

	jwtSvc := auth.NewJWTService("test-secret", 60)
	sessions := newStubSessionRepo()
	return middleware.NewAuthMiddleware(jwtSvc, sessions, noopLogger{}), jwtSvc, sessions
}

func newTestPermissionMiddleware(t *testing.T) *middleware.PermissionMiddleware {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)

	enforcer, err := permission.NewEnforcer(db, "../../../configs/rbac_model.conf", noopLogger{})
	require.NoError(t, err)
	require.NoError(t, enforcer.InitDefaultPolicies())

	return middleware.NewPermissionMiddleware(enforcer, noopLogger{})
}

func init() {
	gin.SetMode(gin.TestMode)
}

// Ticket executor stubs record whether a guarded route actually reached the
// application layer.

type stubCreateTicket struct{ called bool }

func (s *stubCreateTicket) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.ChamadoDTO, error) {
	s.called = true
	return &dto.ChamadoDTO{}, nil
}

type stubGetTicket struct{ called bool }

func (s *stubGetTicket) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.ChamadoDTO, error) {
	s.called = true
	return &dto.ChamadoDTO{}, nil
}

type stubListTickets struct{ called bool }

func (s *stubListTickets) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	s.called = true
	return &usecases.ListTicketsResult{Tickets: []dto.ChamadoDTO{}}, nil
}

type stubListMyTickets struct{ called bool }

func (s *stubListMyTickets) Execute(ctx context.Context, query usecases.ListMyTicketsQuery) (*usecases.ListTicketsResult, error) {
	s.called = true
	return &usecases.ListTicketsResult{Tickets: []dto.ChamadoDTO{}}, nil
}

type stubUpdateTicket struct{ called bool }

func (s *stubUpdateTicket) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.ChamadoDTO, error) {
	s.called = true
	return &dto.ChamadoDTO{}, nil
}

type stubDeleteTicket struct{ called bool }

func (s *stubDeleteTicket) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	s.called = true
	return nil
}

type stubTicketStats struct{ called bool }

func (s *stubTicketStats) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	s.called = true
	return &dto.StatsDTO{}, nil
}
