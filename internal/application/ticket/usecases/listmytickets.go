package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ListMyTicketsQuery always scopes to the calling user; the filter fields
// narrow within that scope only.
type ListMyTicketsQuery struct {
	UsuarioID     uint
	Status        string
	TipoChamadoID uint
	Busca         string
	SortBy        string
	SortOrder     string
}

type ListMyTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListMyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) (*ListTicketsResult, error) {
	if query.UsuarioID == 0 {
		return nil, errors.NewValidationError("usuário é obrigatório")
	}

	filter, err := buildTicketFilter(ListTicketsQuery{
		Status:        query.Status,
		TipoChamadoID: query.TipoChamadoID,
		Busca:         query.Busca,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.GetUserTickets(ctx, query.UsuarioID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list user tickets", "error", err, "usuario_id", query.UsuarioID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return assembleTicketList(ctx, tickets, total, uc.userRepo, uc.catalogRepo)
}
