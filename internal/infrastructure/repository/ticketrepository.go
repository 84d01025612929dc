package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

// allowedTicketOrderByFields whitelists ORDER BY targets to keep user input
// out of raw SQL.
var allowedTicketOrderByFields = map[string]bool{
	"id":              true,
	"nome":            true,
	"status":          true,
	"tipo_chamado_id": true,
	"usuario_id":      true,
	"responsavel_id":  true,
	"prazo":           true,
	"created_at":      true,
	"updated_at":      true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		for _, a := range t.Arquivos() {
			a.BindTicket(model.ID)
			fileModel := r.mapper.FileToModel(a)
			if err := tx.Create(fileModel).Error; err != nil {
				return fmt.Errorf("failed to save ticket file: %w", err)
			}
			if err := a.SetID(fileModel.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"nome":           model.Nome,
			"descricao":      model.Descricao,
			"status":         model.Status,
			"responsavel_id": model.ResponsavelID,
			"prazo":          model.Prazo,
			"observacao":     model.Observacao,
			"closed_at":      model.ClosedAt,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketFileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket files: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadFiles(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) GetByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadFiles(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order(r.orderClause(filter))

	var modelList []models.TicketModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(ctx, modelList, total)
}

func (r *TicketRepository) GetUserTickets(ctx context.Context, usuarioID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	scoped := filter
	scoped.UsuarioID = &usuarioID
	return r.List(ctx, scoped)
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (*ticket.StatusCounts, error) {
	counts := &ticket.StatusCounts{PorTipo: map[uint]int64{}}

	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	for _, row := range statusRows {
		counts.Total += row.Count
		switch row.Status {
		case vo.StatusOpen.String():
			counts.Aberto = row.Count
		case vo.StatusInProgress.String():
			counts.EmAndamento = row.Count
		case vo.StatusClosed.String():
			counts.Fechado = row.Count
		}
	}

	type tipoRow struct {
		TipoChamadoID uint
		Count         int64
	}
	var tipoRows []tipoRow
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Select("tipo_chamado_id, COUNT(*) as count").
		Group("tipo_chamado_id").
		Scan(&tipoRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by tipo: %w", err)
	}

	for _, row := range tipoRows {
		counts.PorTipo[row.TipoChamadoID] = row.Count
	}

	return counts, nil
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.TipoChamadoID != nil {
		query = query.Where("tipo_chamado_id = ?", *filter.TipoChamadoID)
	}
	if filter.UsuarioID != nil {
		query = query.Where("usuario_id = ?", *filter.UsuarioID)
	}
	if filter.ResponsavelID != nil {
		query = query.Where("responsavel_id = ?", *filter.ResponsavelID)
	}
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		query = query.Where("nome LIKE ? OR descricao LIKE ?", like, like)
	}
	return query
}

func (r *TicketRepository) orderClause(filter ticket.TicketFilter) string {
	sortBy := "created_at"
	if allowedTicketOrderByFields[filter.SortBy] {
		sortBy = filter.SortBy
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	return sortBy + " " + sortOrder
}

func (r *TicketRepository) toDomainList(ctx context.Context, modelList []models.TicketModel, total int64) ([]*ticket.Ticket, int64, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		if err := r.loadFiles(ctx, t); err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) loadFiles(ctx context.Context, t *ticket.Ticket) error {
	var fileModels []models.TicketFileModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", t.ID()).
		Order("id ASC").
		Find(&fileModels).Error; err != nil {
		return fmt.Errorf("failed to load ticket files: %w", err)
	}

	arquivos := make([]*ticket.Attachment, 0, len(fileModels))
	for i := range fileModels {
		a, err := r.mapper.FileToDomain(&fileModels[i])
		if err != nil {
			return err
		}
		arquivos = append(arquivos, a)
	}

	t.SetAttachments(arquivos)
	return nil
}
