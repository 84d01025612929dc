package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence
// models. Attachments are mapped separately and attached by the repository.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	FileToModel(a *ticket.Attachment) *models.TicketFileModel
	FileToDomain(model *models.TicketFileModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		UUID:          t.UUID(),
		Nome:          t.Nome(),
		Descricao:     t.Descricao(),
		TipoChamadoID: t.TipoChamadoID(),
		Status:        t.Status().String(),
		UsuarioID:     t.UsuarioID(),
		ResponsavelID: t.ResponsavelID(),
		Observacao:    t.Observacao(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if t.Prazo() != nil {
		prazo := t.Prazo().UnixMilli()
		model.Prazo = &prazo
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket status (id=%d): %w", model.ID, err)
	}

	var prazo, closedAt *time.Time
	if model.Prazo != nil {
		p := millisToTime(*model.Prazo)
		prazo = &p
	}
	if model.ClosedAt != nil {
		c := millisToTime(*model.ClosedAt)
		closedAt = &c
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UUID,
		model.Nome,
		model.Descricao,
		model.TipoChamadoID,
		status,
		model.UsuarioID,
		model.ResponsavelID,
		prazo,
		model.Observacao,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		closedAt,
	)
}

func (m *TicketMapperImpl) FileToModel(a *ticket.Attachment) *models.TicketFileModel {
	return &models.TicketFileModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		FileName:   a.FileName(),
		StoredName: a.StoredName(),
		Link:       a.Link(),
		Size:       a.Size(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) FileToDomain(model *models.TicketFileModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileName,
		model.StoredName,
		model.Link,
		model.Size,
		millisToTime(model.CreatedAt),
	)
}
