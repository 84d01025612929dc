package user

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Session is one authenticated login. Its ID travels inside the JWT claims;
// the token hash lets logout revoke the session server-side.
type Session struct {
	ID        string
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	return &Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// BindToken stores the hash of the issued access token.
func (s *Session) BindToken(token string) {
	s.TokenHash = HashToken(token)
}

// HashToken returns the hex SHA-256 of a token for at-rest storage.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
