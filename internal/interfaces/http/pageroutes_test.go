package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
)

type pageRouteFixture struct {
	router   *Router
	jwt      *auth.JWTService
	sessions *stubSessionRepo
}

func newPageRouteFixture(t *testing.T) *pageRouteFixture {
	t.Helper()

	authMW, jwtSvc, sessions := newTestAuthStack(t)

	r := &Router{
		engine:         gin.New(),
		authMiddleware: authMW,
		logger:         noopLogger{},
	}
	r.setupPageRoutes()

	return &pageRouteFixture{router: r, jwt: jwtSvc, sessions: sessions}
}

func (f *pageRouteFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.Engine().ServeHTTP(w, req)
	return w
}

func TestPageGuardRedirects(t *testing.T) {
	f := newPageRouteFixture(t)
	adminToken := issueToken(t, f.jwt, f.sessions, 1, authorization.RoleAdmin)
	clientToken := issueToken(t, f.jwt, f.sessions, 7, authorization.RoleClient)

	tests := []struct {
		name     string
		path     string
		token    string
		status   int
		location string
	}{
		{"unauthenticated admin page goes to login", "/admin/dashboard", "", http.StatusFound, authorization.LoginRoute},
		{"unauthenticated client page goes to login", "/cliente/chamados", "", http.StatusFound, authorization.LoginRoute},
		{"client on admin pages goes to client home", "/admin/dashboard", clientToken, http.StatusFound, authorization.ClientHomeRoute},
		{"client on admin ticket pages goes to client home", "/admin/chamados", clientToken, http.StatusFound, authorization.ClientHomeRoute},
		{"admin on client pages goes to admin home", "/cliente/chamados", adminToken, http.StatusFound, authorization.AdminHomeRoute},
		{"admin on client form goes to admin home", "/cliente/novo-chamado", adminToken, http.StatusFound, authorization.AdminHomeRoute},
		{"admin reaches admin dashboard", "/admin/dashboard", adminToken, http.StatusOK, ""},
		{"client reaches client tickets", "/cliente/chamados", clientToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.get(tt.path, tt.token)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestRootRouteRedirectsByRole(t *testing.T) {
	f := newPageRouteFixture(t)
	adminToken := issueToken(t, f.jwt, f.sessions, 1, authorization.RoleAdmin)
	clientToken := issueToken(t, f.jwt, f.sessions, 7, authorization.RoleClient)

	w := f.get("/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorization.LoginRoute, w.Header().Get("Location"))

	w = f.get("/", adminToken)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorization.AdminHomeRoute, w.Header().Get("Location"))

	w = f.get("/", clientToken)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorization.ClientHomeRoute, w.Header().Get("Location"))
}

func TestLoginPageSkipsAuthenticatedUsers(t *testing.T) {
	f := newPageRouteFixture(t)
	clientToken := issueToken(t, f.jwt, f.sessions, 7, authorization.RoleClient)

	w := f.get(authorization.LoginRoute, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.get(authorization.LoginRoute, clientToken)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorization.ClientHomeRoute, w.Header().Get("Location"))
}
