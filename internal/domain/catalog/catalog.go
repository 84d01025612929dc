// Package catalog holds the immutable reference data the forms are built
// from: ticket categories (TipoChamado) and user types (StatusUsuario).
// Both are fetched from storage and never mutated by the application.
package catalog

import "fmt"

// TicketType is one TipoChamado entry.
type TicketType struct {
	ID   uint
	Nome string
}

// UserType is one StatusUsuario entry; Status is the short label (TI, UBS, LAB).
type UserType struct {
	ID     uint
	Status string
}

func NewTicketType(id uint, nome string) (*TicketType, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket type ID cannot be zero")
	}
	if nome == "" {
		return nil, fmt.Errorf("ticket type nome is required")
	}
	return &TicketType{ID: id, Nome: nome}, nil
}

func NewUserType(id uint, status string) (*UserType, error) {
	if id == 0 {
		return nil, fmt.Errorf("user type ID cannot be zero")
	}
	if status == "" {
		return nil, fmt.Errorf("user type status is required")
	}
	return &UserType{ID: id, Status: status}, nil
}

// IsTI reports whether the user type is the TI support team, the only type
// eligible to be a ticket responsavel.
func (ut *UserType) IsTI() bool {
	return ut.Status == "TI"
}
