package helpdesk

import "context"

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login authenticates and attaches the returned token to the client. When a
// store is given the session is persisted for later Rehydrate.
func (c *Client) Login(ctx context.Context, input LoginInput, store *SessionStore) (*Session, error) {
	var session Session
	if err := c.Post(ctx, "/auth/login", input, &session); err != nil {
		return nil, err
	}

	c.SetToken(session.Token)

	if store != nil {
		if err := store.Save(&session); err != nil {
			return nil, err
		}
	}

	return &session, nil
}

// Logout revokes the server session and clears local state. The token is
// dropped even if the server call fails; the session row expires on its own.
func (c *Client) Logout(ctx context.Context, store *SessionStore) error {
	err := c.Post(ctx, "/auth/logout", nil, nil)

	c.SetToken("")
	if store != nil {
		if clearErr := store.Clear(); clearErr != nil && err == nil {
			err = clearErr
		}
	}

	return err
}

// Resume rehydrates a stored session and attaches its token.
func (c *Client) Resume(store *SessionStore) (*Session, error) {
	session, err := store.Rehydrate()
	if err != nil {
		return nil, err
	}
	if session != nil {
		c.SetToken(session.Token)
	}
	return session, nil
}
