package helpdesk

import "time"

// Usuario is a user as the API returns it.
type Usuario struct {
	ID    uint   `json:"id"`
	UUID  string `json:"uuid"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Tipo  struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	} `json:"tipo"`
}

type TipoChamado struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type StatusUsuario struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type Arquivo struct {
	ID          uint   `json:"id"`
	NomeArquivo string `json:"nomeArquivo"`
	ArquivoLink string `json:"arquivoLink"`
	Tamanho     int64  `json:"tamanho"`
}

type UsuarioRef struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type TimelineEntry struct {
	Status string     `json:"status"`
	Label  string     `json:"label"`
	At     *time.Time `json:"at"`
}

// Chamado is a ticket as the API returns it.
type Chamado struct {
	ID          uint            `json:"id"`
	UUID        string          `json:"uuid"`
	Nome        string          `json:"nome"`
	Descricao   string          `json:"descricao"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Tipo        TipoChamado     `json:"tipo"`
	Usuario     UsuarioRef      `json:"usuario"`
	Responsavel *UsuarioRef     `json:"responsavel"`
	Prazo       *time.Time      `json:"prazo"`
	Observacao  string          `json:"observacao"`
	Atrasado    bool            `json:"atrasado"`
	Arquivos    []Arquivo       `json:"arquivos"`
	Timeline    []TimelineEntry `json:"timeline"`
	CreatedAt   time.Time       `json:"createdAt"`
	ClosedAt    *time.Time      `json:"closedAt"`
}

type ChamadoStats struct {
	Total       int64          `json:"total"`
	Aberto      int64          `json:"aberto"`
	EmAndamento int64          `json:"emAndamento"`
	Fechado     int64          `json:"fechado"`
	PorTipo     map[uint]int64 `json:"porTipo"`
}

type listEnvelope[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
