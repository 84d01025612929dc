package catalog

import "context"

// Repository reads reference data. Implementations may layer a cache in
// front of storage; the data itself is immutable at runtime.
type Repository interface {
	ListTicketTypes(ctx context.Context) ([]*TicketType, error)
	ListUserTypes(ctx context.Context) ([]*UserType, error)
	GetTicketType(ctx context.Context, id uint) (*TicketType, error)
	GetUserType(ctx context.Context, id uint) (*UserType, error)
}
