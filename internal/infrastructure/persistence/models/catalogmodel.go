package models

import "helpdesk/internal/shared/constants"

type TicketTypeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Nome string `gorm:"uniqueIndex;size:100;not null"`
}

func (TicketTypeModel) TableName() string {
	return constants.TableTicketTypes
}

type UserTypeModel struct {
	ID     uint   `gorm:"primaryKey"`
	Status string `gorm:"uniqueIndex;size:20;not null"`
}

func (UserTypeModel) TableName() string {
	return constants.TableUserTypes
}
