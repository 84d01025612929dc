package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// ArquivoDTO is one attachment on a chamado. ArquivoLink is the public URL
// the file is served from.
type ArquivoDTO struct {
	ID          uint   `json:"id"`
	NomeArquivo string `json:"nomeArquivo"`
	ArquivoLink string `json:"arquivoLink"`
	Tamanho     int64  `json:"tamanho"`
}

// UsuarioRefDTO is the short user reference embedded in a chamado.
type UsuarioRefDTO struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// TipoChamadoDTO mirrors one TipoChamado reference entry.
type TipoChamadoDTO struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

// TimelineEntryDTO is one step of the derived status history. At is nil for
// the em_andamento step, whose exact entry time is not tracked.
type TimelineEntryDTO struct {
	Status string     `json:"status"`
	Label  string     `json:"label"`
	At     *time.Time `json:"at,omitempty"`
}

// ChamadoDTO is the outward-facing ticket shape.
type ChamadoDTO struct {
	ID          uint               `json:"id"`
	UUID        string             `json:"uuid"`
	Nome        string             `json:"nome"`
	Descricao   string             `json:"descricao"`
	Tipo        TipoChamadoDTO     `json:"tipo"`
	Status      string             `json:"status"`
	StatusLabel string             `json:"statusLabel"`
	Usuario     UsuarioRefDTO      `json:"usuario"`
	Responsavel *UsuarioRefDTO     `json:"responsavel,omitempty"`
	Prazo       *time.Time         `json:"prazo,omitempty"`
	Observacao  string             `json:"observacao,omitempty"`
	Atrasado    bool               `json:"atrasado"`
	Arquivos    []ArquivoDTO       `json:"arquivos"`
	Timeline    []TimelineEntryDTO `json:"timeline,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	ClosedAt    *time.Time         `json:"closedAt,omitempty"`
}

// StatsDTO aggregates ticket counts for the admin dashboard.
type StatsDTO struct {
	Total       int64          `json:"total"`
	Aberto      int64          `json:"aberto"`
	EmAndamento int64          `json:"emAndamento"`
	Fechado     int64          `json:"fechado"`
	PorTipo     map[uint]int64 `json:"porTipo"`
}

// ArquivosFromDomain converts domain attachments.
func ArquivosFromDomain(arquivos []*ticket.Attachment) []ArquivoDTO {
	out := make([]ArquivoDTO, 0, len(arquivos))
	for _, a := range arquivos {
		out = append(out, ArquivoDTO{
			ID:          a.ID(),
			NomeArquivo: a.FileName(),
			ArquivoLink: a.Link(),
			Tamanho:     a.Size(),
		})
	}
	return out
}

// TimelineFromDomain converts the derived status history.
func TimelineFromDomain(entries []ticket.TimelineEntry) []TimelineEntryDTO {
	out := make([]TimelineEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, TimelineEntryDTO{
			Status: e.Status.String(),
			Label:  e.Status.Label(),
			At:     e.At,
		})
	}
	return out
}
