// Package helpdesk is the Go client for the help desk HTTP API. It mirrors
// the backend's response envelope and keeps a persisted session so CLIs and
// frontends can resume authenticated work between runs.
package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a failed backend call. Message prefers the backend-supplied
// error message over a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// envelope mirrors the backend response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string

	Usuarios      *UsuariosService
	Chamados      *ChamadosService
	TiposChamado  *TiposChamadoService
	StatusUsuario *StatusUsuarioService
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Usuarios = &UsuariosService{client: c}
	c.Chamados = &ChamadosService{client: c}
	c.TiposChamado = &TiposChamadoService{client: c}
	c.StatusUsuario = &StatusUsuarioService{client: c}

	return c
}

// SetToken attaches the bearer token sent on every subsequent request.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// PostFormData sends a prepared multipart body, such as one built by
// TicketForm.Build.
func (c *Client) PostFormData(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *Client) PutFormData(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body (proxy error page) falls through to the
		// generic message below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success && env.Error != nil) {
		message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}
