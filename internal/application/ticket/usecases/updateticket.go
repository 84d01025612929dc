package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries the admin edit form. Pointer fields are
// applied only when set; ResponsavelID of 0 clears the assignment.
type UpdateTicketCommand struct {
	TicketID      uint
	Status        *string
	ResponsavelID *uint
	Prazo         *time.Time
	ClearPrazo    bool
	Observacao    *string
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	sanitizer   Sanitizer
	notifier    AssignmentNotifier
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	sanitizer Sanitizer,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		sanitizer:   sanitizer,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.ChamadoDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("chamado não encontrado")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}

	var newAssignee *user.User
	if cmd.ResponsavelID != nil {
		if *cmd.ResponsavelID == 0 {
			t.Unassign()
		} else if t.ResponsavelID() == nil || *t.ResponsavelID() != *cmd.ResponsavelID {
			newAssignee, err = uc.resolveResponsavel(ctx, *cmd.ResponsavelID)
			if err != nil {
				return nil, err
			}
			if err := t.AssignTo(newAssignee.ID()); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("status inválido")
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ClearPrazo {
		t.SetPrazo(nil)
	} else if cmd.Prazo != nil {
		t.SetPrazo(cmd.Prazo)
	}

	if cmd.Observacao != nil {
		t.SetObservacao(uc.sanitizer.Sanitize(*cmd.Observacao))
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to update ticket")
	}

	// Notify only after the assignment is durable. A failed email never
	// fails the update.
	if newAssignee != nil {
		if err := uc.notifier.NotifyAssignment(ctx, newAssignee.Email().String(), newAssignee.Name().String(), t.Nome(), t.ID()); err != nil {
			uc.logger.Warnw("failed to notify responsavel", "error", err, "ticket_id", t.ID())
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "status", t.Status().String())

	tipo, _ := uc.catalogRepo.GetTicketType(ctx, t.TipoChamadoID())
	owner, _ := uc.userRepo.GetByID(ctx, t.UsuarioID())

	var responsavel *user.User
	if t.ResponsavelID() != nil {
		responsavel, _ = uc.userRepo.GetByID(ctx, *t.ResponsavelID())
	}

	return toChamadoDTO(t, tipo, owner, responsavel, true), nil
}

// resolveResponsavel loads the assignee and enforces that only TI-type
// users can be responsible for tickets.
func (uc *UpdateTicketUseCase) resolveResponsavel(ctx context.Context, responsavelID uint) (*user.User, error) {
	assignee, err := uc.userRepo.GetByID(ctx, responsavelID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewValidationError("responsável inválido")
		}
		uc.logger.Errorw("failed to get responsavel", "error", err, "user_id", responsavelID)
		return nil, errors.NewInternalError("failed to get responsavel")
	}

	tipo, err := uc.catalogRepo.GetUserType(ctx, assignee.TipoID())
	if err != nil {
		return nil, errors.NewValidationError("responsável inválido")
	}
	if !tipo.IsTI() {
		return nil, errors.NewValidationError("responsável deve ser do tipo TI")
	}

	return assignee, nil
}
