package helpdesk

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

type ChamadosService struct {
	client *Client
}

type ChamadoFilter struct {
	Status        string
	TipoChamadoID uint
	UsuarioID     uint
	ResponsavelID uint
	Busca         string
	SortBy        string
	SortOrder     string
}

func (f ChamadoFilter) values() url.Values {
	query := url.Values{}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.TipoChamadoID != 0 {
		query.Set("tipoChamadoId", fmt.Sprint(f.TipoChamadoID))
	}
	if f.UsuarioID != 0 {
		query.Set("usuarioId", fmt.Sprint(f.UsuarioID))
	}
	if f.ResponsavelID != 0 {
		query.Set("responsavelId", fmt.Sprint(f.ResponsavelID))
	}
	if f.Busca != "" {
		query.Set("busca", f.Busca)
	}
	if f.SortBy != "" {
		query.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		query.Set("sortOrder", f.SortOrder)
	}
	return query
}

type UpdateChamadoInput struct {
	Status        *string    `json:"status,omitempty"`
	ResponsavelID *uint      `json:"responsavelId,omitempty"`
	Prazo         *time.Time `json:"prazo,omitempty"`
	ClearPrazo    bool       `json:"clearPrazo,omitempty"`
	Observacao    *string    `json:"observacao,omitempty"`
}

type ChamadoList struct {
	Items []Chamado
	Total int64
}

// Create submits the multipart ticket form built by TicketForm.Build and
// returns the backend-confirmed ticket.
func (s *ChamadosService) Create(ctx context.Context, form *TicketForm) (*Chamado, error) {
	body, contentType, err := form.Build()
	if err != nil {
		return nil, err
	}

	var created Chamado
	if err := s.client.PostFormData(ctx, "/chamado", body, contentType, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ChamadosService) List(ctx context.Context, filter ChamadoFilter) (*ChamadoList, error) {
	var raw listEnvelope[Chamado]
	if err := s.client.Get(ctx, "/chamado", filter.values(), &raw); err != nil {
		return nil, err
	}
	return &ChamadoList{Items: raw.Items, Total: raw.Total}, nil
}

// Mine lists only the caller's own tickets.
func (s *ChamadosService) Mine(ctx context.Context, filter ChamadoFilter) (*ChamadoList, error) {
	var raw listEnvelope[Chamado]
	if err := s.client.Get(ctx, "/chamado/meus", filter.values(), &raw); err != nil {
		return nil, err
	}
	return &ChamadoList{Items: raw.Items, Total: raw.Total}, nil
}

func (s *ChamadosService) Get(ctx context.Context, id uint) (*Chamado, error) {
	var found Chamado
	if err := s.client.Get(ctx, fmt.Sprintf("/chamado/%d", id), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// Update persists the change and returns the confirmed entity; callers
// refresh their lists from the response rather than mutating locally.
func (s *ChamadosService) Update(ctx context.Context, id uint, input UpdateChamadoInput) (*Chamado, error) {
	var updated Chamado
	if err := s.client.Put(ctx, fmt.Sprintf("/chamado/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ChamadosService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/chamado/%d", id), nil)
}

func (s *ChamadosService) Stats(ctx context.Context) (*ChamadoStats, error) {
	var stats ChamadoStats
	if err := s.client.Get(ctx, "/chamado/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
