package helpdesk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken("token-abc"))

	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(t, client.Get(context.Background(), "/chamado/1", nil, &out))

	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, uint(1), out.ID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Get(context.Background(), "/TipoChamado", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestClient_APIErrorPrefersBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"type":"UNAUTHORIZED","message":"email ou senha inválidos"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Post(context.Background(), "/auth/login", LoginInput{Email: "a@b.c", Senha: "x"}, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "email ou senha inválidos", apiErr.Message)
}

func TestClient_APIErrorGenericFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Get(context.Background(), "/chamado", nil, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "502")
}

func TestClient_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true,"data":{"items":[],"total":0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	query := url.Values{}
	query.Set("nome", "maria")

	_, err := client.Usuarios.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, "maria", gotQuery.Get("nome"))
}

func TestClient_LoginAttachesTokenAndPersists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"success":true,"data":{"id":10,"nome":"Maria Souza","email":"maria@ubs.gov.br","role":"client","tipo":"UBS","token":"token-xyz","rotaInicial":"/cliente/chamados"}}`))
		default:
			assert.Equal(t, "Bearer token-xyz", r.Header.Get("Authorization"))
			w.Write([]byte(`{"success":true,"data":{"items":[],"total":0}}`))
		}
	}))
	defer server.Close()

	store := NewSessionStore(t.TempDir() + "/session.json")
	client := NewClient(server.URL)

	session, err := client.Login(context.Background(), LoginInput{Email: "maria@ubs.gov.br", Senha: "Senha@123"}, store)
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", session.Token)
	assert.Equal(t, "/cliente/chamados", session.RotaInicial)
	assert.Equal(t, SessionAuthenticated, store.State())

	// Subsequent calls carry the token.
	_, err = client.Chamados.Mine(context.Background(), ChamadoFilter{})
	require.NoError(t, err)
}
