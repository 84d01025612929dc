package usecases

import (
	"context"

	"github.com/google/uuid"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Nome          string
	Descricao     string
	TipoChamadoID uint
	UsuarioID     uint
	Files         []FileUpload
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	store       AttachmentStore
	sanitizer   Sanitizer
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	store AttachmentStore,
	sanitizer Sanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		store:       store,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.ChamadoDTO, error) {
	tipo, err := uc.catalogRepo.GetTicketType(ctx, cmd.TipoChamadoID)
	if err != nil {
		return nil, errors.NewValidationError("tipo de chamado inválido")
	}

	owner, err := uc.userRepo.GetByID(ctx, cmd.UsuarioID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewValidationError("usuário inválido")
		}
		uc.logger.Errorw("failed to get ticket owner", "error", err, "user_id", cmd.UsuarioID)
		return nil, errors.NewInternalError("failed to get user")
	}

	nome := uc.sanitizer.Sanitize(cmd.Nome)
	descricao := uc.sanitizer.Sanitize(cmd.Descricao)

	newTicket, err := ticket.NewTicket(uuid.NewString(), nome, descricao, tipo.ID, owner.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Files land in storage before the ticket row exists; on a failed save
	// they are removed again so no orphan files survive.
	stored := make([]*StoredFile, 0, len(cmd.Files))
	for _, upload := range cmd.Files {
		sf, err := uc.store.Store(ctx, upload)
		if err != nil {
			uc.rollbackStored(ctx, stored)
			uc.logger.Errorw("failed to store attachment", "error", err, "file", upload.FileName)
			return nil, errors.NewInternalError("failed to store attachment")
		}
		stored = append(stored, sf)

		attachment, err := ticket.NewAttachment(upload.FileName, sf.StoredName, sf.Link, upload.Size)
		if err != nil {
			uc.rollbackStored(ctx, stored)
			return nil, errors.NewValidationError(err.Error())
		}
		if err := newTicket.AddAttachment(attachment); err != nil {
			uc.rollbackStored(ctx, stored)
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.rollbackStored(ctx, stored)
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"usuario_id", owner.ID(),
		"tipo", tipo.Nome,
		"arquivos", len(newTicket.Arquivos()),
	)

	return toChamadoDTO(newTicket, tipo, owner, nil, false), nil
}

func (uc *CreateTicketUseCase) rollbackStored(ctx context.Context, stored []*StoredFile) {
	for _, sf := range stored {
		if err := uc.store.Remove(ctx, sf.StoredName); err != nil {
			uc.logger.Warnw("failed to remove stored attachment", "error", err, "stored_name", sf.StoredName)
		}
	}
}
