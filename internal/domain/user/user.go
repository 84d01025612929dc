package user

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/authorization"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	uuid         string
	name         *vo.Name
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	tipoID       uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate with initial values. The password
// arrives already hashed; plain-text passwords never cross this boundary.
func NewUser(uuid string, name *vo.Name, email *vo.Email, passwordHash string, role authorization.UserRole, tipoID uint) (*User, error) {
	if uuid == "" {
		return nil, fmt.Errorf("user UUID is required")
	}
	if name == nil {
		return nil, fmt.Errorf("nome is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("senha hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if tipoID == 0 {
		return nil, fmt.Errorf("tipo is required")
	}

	now := time.Now()
	return &User{
		uuid:         uuid,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		tipoID:       tipoID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	uuid string,
	name *vo.Name,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	tipoID uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if name == nil {
		return nil, fmt.Errorf("nome is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		uuid:         uuid,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		tipoID:       tipoID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) UUID() string {
	return u.uuid
}

func (u *User) Name() *vo.Name {
	return u.name
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) TipoID() uint {
	return u.tipoID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateName(newName *vo.Name) error {
	if newName == nil {
		return fmt.Errorf("nome is required")
	}
	u.name = newName
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateEmail(newEmail *vo.Email) error {
	if newEmail == nil {
		return fmt.Errorf("email is required")
	}
	u.email = newEmail
	u.updatedAt = time.Now()
	return nil
}

// ChangePassword replaces the stored hash. Callers decide whether a change
// happens at all: a blank password on the edit flow means "unchanged" and
// never reaches this method.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("senha hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeTipo(tipoID uint) error {
	if tipoID == 0 {
		return fmt.Errorf("tipo is required")
	}
	u.tipoID = tipoID
	u.updatedAt = time.Now()
	return nil
}

// VerifyPassword checks the given plain-text password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// PasswordHasher abstracts the hashing scheme used for user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
