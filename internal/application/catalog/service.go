// Package catalog exposes the reference data endpoints consume: TipoChamado
// and StatusUsuario listings.
package catalog

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	userdto "helpdesk/internal/application/user/dto"
	domaincatalog "helpdesk/internal/domain/catalog"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type Service struct {
	repo   domaincatalog.Repository
	logger logger.Interface
}

func NewService(repo domaincatalog.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListTicketTypes(ctx context.Context) ([]dto.TipoChamadoDTO, error) {
	ticketTypes, err := s.repo.ListTicketTypes(ctx)
	if err != nil {
		s.logger.Errorw("failed to list ticket types", "error", err)
		return nil, errors.NewInternalError("failed to list ticket types")
	}

	out := make([]dto.TipoChamadoDTO, 0, len(ticketTypes))
	for _, tt := range ticketTypes {
		out = append(out, dto.TipoChamadoDTO{ID: tt.ID, Nome: tt.Nome})
	}
	return out, nil
}

func (s *Service) ListUserTypes(ctx context.Context) ([]userdto.TipoDTO, error) {
	userTypes, err := s.repo.ListUserTypes(ctx)
	if err != nil {
		s.logger.Errorw("failed to list user types", "error", err)
		return nil, errors.NewInternalError("failed to list user types")
	}

	out := make([]userdto.TipoDTO, 0, len(userTypes))
	for _, ut := range userTypes {
		out = append(out, userdto.TipoDTO{ID: ut.ID, Status: ut.Status})
	}
	return out, nil
}
