package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const (
	maxNomeLength      = 200
	maxDescricaoLength = 5000
)

// Ticket is the chamado aggregate root. It is owned by exactly one user and
// optionally assigned to a responsavel (a TI-type user).
type Ticket struct {
	id            uint
	uuid          string
	nome          string
	descricao     string
	tipoChamadoID uint
	status        vo.TicketStatus
	usuarioID     uint
	responsavelID *uint
	prazo         *time.Time
	observacao    string
	arquivos      []*Attachment
	createdAt     time.Time
	updatedAt     time.Time
	closedAt      *time.Time
}

func NewTicket(uuid, nome, descricao string, tipoChamadoID, usuarioID uint) (*Ticket, error) {
	if uuid == "" {
		return nil, fmt.Errorf("ticket UUID is required")
	}
	if len(nome) == 0 {
		return nil, fmt.Errorf("nome is required")
	}
	if len(nome) > maxNomeLength {
		return nil, fmt.Errorf("nome exceeds maximum length of %d characters", maxNomeLength)
	}
	if len(descricao) == 0 {
		return nil, fmt.Errorf("descricao is required")
	}
	if len(descricao) > maxDescricaoLength {
		return nil, fmt.Errorf("descricao exceeds maximum length of %d characters", maxDescricaoLength)
	}
	if tipoChamadoID == 0 {
		return nil, fmt.Errorf("tipo de chamado is required")
	}
	if usuarioID == 0 {
		return nil, fmt.Errorf("usuario is required")
	}

	now := time.Now()
	return &Ticket{
		uuid:          uuid,
		nome:          nome,
		descricao:     descricao,
		tipoChamadoID: tipoChamadoID,
		status:        vo.StatusOpen,
		usuarioID:     usuarioID,
		arquivos:      []*Attachment{},
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	uuid string,
	nome string,
	descricao string,
	tipoChamadoID uint,
	status vo.TicketStatus,
	usuarioID uint,
	responsavelID *uint,
	prazo *time.Time,
	observacao string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(nome) == 0 {
		return nil, fmt.Errorf("nome is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if usuarioID == 0 {
		return nil, fmt.Errorf("usuario is required")
	}

	return &Ticket{
		id:            id,
		uuid:          uuid,
		nome:          nome,
		descricao:     descricao,
		tipoChamadoID: tipoChamadoID,
		status:        status,
		usuarioID:     usuarioID,
		responsavelID: responsavelID,
		prazo:         prazo,
		observacao:    observacao,
		arquivos:      []*Attachment{},
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		closedAt:      closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UUID() string {
	return t.uuid
}

func (t *Ticket) Nome() string {
	return t.nome
}

func (t *Ticket) Descricao() string {
	return t.descricao
}

func (t *Ticket) TipoChamadoID() uint {
	return t.tipoChamadoID
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) UsuarioID() uint {
	return t.usuarioID
}

func (t *Ticket) ResponsavelID() *uint {
	return t.responsavelID
}

func (t *Ticket) Prazo() *time.Time {
	return t.prazo
}

func (t *Ticket) Observacao() string {
	return t.observacao
}

func (t *Ticket) Arquivos() []*Attachment {
	arquivosCopy := make([]*Attachment, len(t.arquivos))
	copy(arquivosCopy, t.arquivos)
	return arquivosCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket along the forward-only status machine.
// closedAt is set exactly when the ticket enters fechado.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsClosed() && t.closedAt == nil {
		now := time.Now()
		t.closedAt = &now
	}

	return nil
}

// AssignTo sets the responsavel. The caller is responsible for checking that
// the assignee is a TI-type user before calling.
func (t *Ticket) AssignTo(responsavelID uint) error {
	if responsavelID == 0 {
		return fmt.Errorf("responsavel ID cannot be zero")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot assign a closed ticket")
	}

	t.responsavelID = &responsavelID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.responsavelID = nil
	t.updatedAt = time.Now()
}

func (t *Ticket) SetPrazo(prazo *time.Time) {
	t.prazo = prazo
	t.updatedAt = time.Now()
}

func (t *Ticket) SetObservacao(observacao string) {
	t.observacao = observacao
	t.updatedAt = time.Now()
}

func (t *Ticket) AddAttachment(a *Attachment) error {
	if a == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	t.arquivos = append(t.arquivos, a)
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetAttachments(arquivos []*Attachment) {
	if arquivos == nil {
		arquivos = []*Attachment{}
	}
	t.arquivos = arquivos
}

// IsOverdue reports whether an open ticket is past its prazo.
func (t *Ticket) IsOverdue() bool {
	if t.prazo == nil || t.status.IsClosed() {
		return false
	}
	return time.Now().After(*t.prazo)
}

// CanBeViewedBy implements the owner-or-admin visibility rule.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if t.usuarioID == userID {
		return true
	}
	if t.responsavelID != nil && *t.responsavelID == userID {
		return true
	}
	return false
}
