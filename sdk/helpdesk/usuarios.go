package helpdesk

import (
	"context"
	"fmt"
	"net/url"
)

type UsuariosService struct {
	client *Client
}

type CreateUsuarioInput struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	TipoID uint   `json:"tipoId"`
	Role   string `json:"role,omitempty"`
}

type UpdateUsuarioInput struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	// Senha left blank keeps the current password.
	Senha  string `json:"senha,omitempty"`
	TipoID uint   `json:"tipoId"`
}

type UsuarioList struct {
	Items []Usuario
	Total int64
}

// List fetches users with optional filters, typically the query built by
// UserFilter.Values.
func (s *UsuariosService) List(ctx context.Context, query url.Values) (*UsuarioList, error) {
	var raw listEnvelope[Usuario]
	if err := s.client.Get(ctx, "/usuario", query, &raw); err != nil {
		return nil, err
	}
	return &UsuarioList{Items: raw.Items, Total: raw.Total}, nil
}

func (s *UsuariosService) Create(ctx context.Context, input CreateUsuarioInput) (*Usuario, error) {
	var created Usuario
	if err := s.client.Post(ctx, "/usuario", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *UsuariosService) Update(ctx context.Context, input UpdateUsuarioInput) (*Usuario, error) {
	var updated Usuario
	if err := s.client.Put(ctx, "/usuario", input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *UsuariosService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/usuario/%d", id), nil)
}
