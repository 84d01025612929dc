package user

import "context"

// Filter narrows user listings. All fields are optional substring matches
// except Tipo, which matches the reference label exactly (TI/UBS/LAB).
type Filter struct {
	Nome  string
	Email string
	Tipo  string
}

func (f Filter) IsZero() bool {
	return f.Nome == "" && f.Email == "" && f.Tipo == ""
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUUID(ctx context.Context, uuid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
}

type SessionRepository interface {
	Save(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
}
