package models

import "helpdesk/internal/shared/constants"

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	UUID         string `gorm:"uniqueIndex;size:36;not null"`
	Nome         string `gorm:"size:200;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	TipoID       uint   `gorm:"not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"not null;index"`
	TokenHash string `gorm:"size:64;not null"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
