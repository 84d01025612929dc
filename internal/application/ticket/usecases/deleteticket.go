package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	store      AttachmentStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	store AttachmentStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NewNotFoundError("chamado não encontrado")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return errors.NewInternalError("failed to get ticket")
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return errors.NewInternalError("failed to delete ticket")
	}

	// Stored files go after the row: a leftover file is recoverable, a
	// dangling DB reference is not.
	for _, a := range t.Arquivos() {
		if err := uc.store.Remove(ctx, a.StoredName()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "error", err, "stored_name", a.StoredName())
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID())
	return nil
}
