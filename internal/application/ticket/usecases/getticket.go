package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// Viewer scoping: non-admins only see tickets they own or are
	// assigned to.
	ViewerID uint
	IsAdmin  bool
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.ChamadoDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("chamado não encontrado")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}

	if !t.CanBeViewedBy(query.ViewerID, query.IsAdmin) {
		// Same response as a missing ticket so IDs cannot be probed.
		return nil, errors.NewNotFoundError("chamado não encontrado")
	}

	tipo, _ := uc.catalogRepo.GetTicketType(ctx, t.TipoChamadoID())
	owner, _ := uc.userRepo.GetByID(ctx, t.UsuarioID())

	var responsavel *user.User
	if t.ResponsavelID() != nil {
		responsavel, _ = uc.userRepo.GetByID(ctx, *t.ResponsavelID())
	}

	return toChamadoDTO(t, tipo, owner, responsavel, true), nil
}
