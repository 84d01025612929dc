package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows ticket listings. Busca is a free-text match over
// nome and descricao.
type TicketFilter struct {
	Status        *vo.TicketStatus
	TipoChamadoID *uint
	UsuarioID     *uint
	ResponsavelID *uint
	Busca         string
	SortBy        string
	SortOrder     string
}

// StatusCounts aggregates ticket totals per status for the dashboard.
type StatusCounts struct {
	Total       int64
	Aberto      int64
	EmAndamento int64
	Fechado     int64
	PorTipo     map[uint]int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByUUID(ctx context.Context, uuid string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetUserTickets(ctx context.Context, usuarioID uint, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (*StatusCounts, error)
}
