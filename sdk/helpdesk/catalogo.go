package helpdesk

import "context"

type TiposChamadoService struct {
	client *Client
}

func (s *TiposChamadoService) List(ctx context.Context) ([]TipoChamado, error) {
	var tipos []TipoChamado
	if err := s.client.Get(ctx, "/TipoChamado", nil, &tipos); err != nil {
		return nil, err
	}
	return tipos, nil
}

type StatusUsuarioService struct {
	client *Client
}

func (s *StatusUsuarioService) List(ctx context.Context) ([]StatusUsuario, error) {
	var status []StatusUsuario
	if err := s.client.Get(ctx, "/StatusUsuario", nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}
