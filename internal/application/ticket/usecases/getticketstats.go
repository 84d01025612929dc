package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, errors.NewInternalError("failed to count tickets")
	}

	porTipo := counts.PorTipo
	if porTipo == nil {
		porTipo = map[uint]int64{}
	}

	return &dto.StatsDTO{
		Total:       counts.Total,
		Aberto:      counts.Aberto,
		EmAndamento: counts.EmAndamento,
		Fechado:     counts.Fechado,
		PorTipo:     porTipo,
	}, nil
}
