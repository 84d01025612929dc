package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status        string
	TipoChamadoID uint
	UsuarioID     uint
	ResponsavelID uint
	Busca         string
	SortBy        string
	SortOrder     string
}

type ListTicketsResult struct {
	Tickets []dto.ChamadoDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildTicketFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result, err := uc.assemble(ctx, tickets, total)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ListTicketsUseCase) assemble(ctx context.Context, tickets []*ticket.Ticket, total int64) (*ListTicketsResult, error) {
	return assembleTicketList(ctx, tickets, total, uc.userRepo, uc.catalogRepo)
}

// buildTicketFilter validates and converts the raw query into a repository
// filter. An unknown status is rejected rather than silently ignored.
func buildTicketFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Busca:     query.Busca,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("status inválido")
		}
		filter.Status = &status
	}
	if query.TipoChamadoID != 0 {
		tipoID := query.TipoChamadoID
		filter.TipoChamadoID = &tipoID
	}
	if query.UsuarioID != 0 {
		usuarioID := query.UsuarioID
		filter.UsuarioID = &usuarioID
	}
	if query.ResponsavelID != 0 {
		responsavelID := query.ResponsavelID
		filter.ResponsavelID = &responsavelID
	}

	return filter, nil
}

// assembleTicketList resolves tipo and user references for a page of tickets
// with one catalog read and one user read per distinct ID.
func assembleTicketList(
	ctx context.Context,
	tickets []*ticket.Ticket,
	total int64,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
) (*ListTicketsResult, error) {
	tipos := map[uint]*catalog.TicketType{}
	if ticketTypes, err := catalogRepo.ListTicketTypes(ctx); err == nil {
		for _, tt := range ticketTypes {
			tipos[tt.ID] = tt
		}
	}

	usersByID := map[uint]*user.User{}
	lookupUser := func(id uint) *user.User {
		if u, ok := usersByID[id]; ok {
			return u
		}
		u, err := userRepo.GetByID(ctx, id)
		if err != nil {
			u = nil
		}
		usersByID[id] = u
		return u
	}

	result := &ListTicketsResult{
		Tickets: make([]dto.ChamadoDTO, 0, len(tickets)),
		Total:   total,
	}
	for _, t := range tickets {
		owner := lookupUser(t.UsuarioID())
		var responsavel *user.User
		if t.ResponsavelID() != nil {
			responsavel = lookupUser(*t.ResponsavelID())
		}
		result.Tickets = append(result.Tickets, *toChamadoDTO(t, tipos[t.TipoChamadoID()], owner, responsavel, false))
	}
	return result, nil
}
