package helpdesk

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SessionState tracks the rehydration lifecycle: a client starts loading,
// then lands on authenticated or unauthenticated.
type SessionState string

const (
	SessionLoading         SessionState = "loading"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Session is the persisted login payload.
type Session struct {
	ID          uint   `json:"id"`
	UUID        string `json:"uuid"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Tipo        string `json:"tipo"`
	Token       string `json:"token"`
	RotaInicial string `json:"rotaInicial"`
}

// SessionStore persists the session as a JSON file.
type SessionStore struct {
	path  string
	state SessionState
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path, state: SessionLoading}
}

func (s *SessionStore) State() SessionState {
	return s.state
}

// Rehydrate loads a previously saved session. Corrupt or unreadable files
// are removed so the next run starts clean, and report unauthenticated
// rather than an error.
func (s *SessionStore) Rehydrate() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.state = SessionUnauthenticated
			return nil, nil
		}
		s.state = SessionUnauthenticated
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil || session.Token == "" {
		_ = os.Remove(s.path)
		s.state = SessionUnauthenticated
		return nil, nil
	}

	s.state = SessionAuthenticated
	return &session, nil
}

func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.state = SessionAuthenticated
	return nil
}

// Clear removes the stored session; a missing file is fine.
func (s *SessionStore) Clear() error {
	s.state = SessionUnauthenticated
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
