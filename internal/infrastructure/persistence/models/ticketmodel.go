package models

import "helpdesk/internal/shared/constants"

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:36;not null"`
	Nome          string `gorm:"size:200;not null"`
	Descricao     string `gorm:"type:text;not null"`
	TipoChamadoID uint   `gorm:"not null;index"`
	Status        string `gorm:"size:20;not null;index"`
	UsuarioID     uint   `gorm:"not null;index"`
	ResponsavelID *uint  `gorm:"index"`
	Prazo         *int64 `gorm:"index"`
	Observacao    string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt      *int64
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketFileModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	FileName   string `gorm:"size:255;not null"`
	StoredName string `gorm:"uniqueIndex;size:255;not null"`
	Link       string `gorm:"size:512;not null"`
	Size       int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketFileModel) TableName() string {
	return constants.TableTicketFiles
}
