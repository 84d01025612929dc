package usecases

import (
	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

func toChamadoDTO(t *ticket.Ticket, tipo *catalog.TicketType, owner, responsavel *user.User, includeTimeline bool) *dto.ChamadoDTO {
	out := &dto.ChamadoDTO{
		ID:          t.ID(),
		UUID:        t.UUID(),
		Nome:        t.Nome(),
		Descricao:   t.Descricao(),
		Status:      t.Status().String(),
		StatusLabel: t.Status().Label(),
		Prazo:       t.Prazo(),
		Observacao:  t.Observacao(),
		Atrasado:    t.IsOverdue(),
		Arquivos:    dto.ArquivosFromDomain(t.Arquivos()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ClosedAt:    t.ClosedAt(),
	}

	if tipo != nil {
		out.Tipo = dto.TipoChamadoDTO{ID: tipo.ID, Nome: tipo.Nome}
	} else {
		out.Tipo = dto.TipoChamadoDTO{ID: t.TipoChamadoID()}
	}

	if owner != nil {
		out.Usuario = dto.UsuarioRefDTO{
			ID:    owner.ID(),
			Nome:  owner.Name().String(),
			Email: owner.Email().String(),
		}
	} else {
		out.Usuario = dto.UsuarioRefDTO{ID: t.UsuarioID()}
	}

	if responsavel != nil {
		out.Responsavel = &dto.UsuarioRefDTO{
			ID:    responsavel.ID(),
			Nome:  responsavel.Name().String(),
			Email: responsavel.Email().String(),
		}
	} else if t.ResponsavelID() != nil {
		out.Responsavel = &dto.UsuarioRefDTO{ID: *t.ResponsavelID()}
	}

	if includeTimeline {
		out.Timeline = dto.TimelineFromDomain(ticket.Timeline(t))
	}

	return out
}
