package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListTicketTypes(ctx context.Context) ([]*catalog.TicketType, error) {
	var modelList []models.TicketTypeModel
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	out := make([]*catalog.TicketType, 0, len(modelList))
	for i := range modelList {
		tt, err := catalog.NewTicketType(modelList[i].ID, modelList[i].Nome)
		if err != nil {
			return nil, err
		}
		out = append(out, tt)
	}
	return out, nil
}

func (r *CatalogRepository) ListUserTypes(ctx context.Context) ([]*catalog.UserType, error) {
	var modelList []models.UserTypeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list user types: %w", err)
	}

	out := make([]*catalog.UserType, 0, len(modelList))
	for i := range modelList {
		ut, err := catalog.NewUserType(modelList[i].ID, modelList[i].Status)
		if err != nil {
			return nil, err
		}
		out = append(out, ut)
	}
	return out, nil
}

func (r *CatalogRepository) GetTicketType(ctx context.Context, id uint) (*catalog.TicketType, error) {
	var model models.TicketTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket type not found")
		}
		return nil, fmt.Errorf("failed to find ticket type: %w", err)
	}
	return catalog.NewTicketType(model.ID, model.Nome)
}

func (r *CatalogRepository) GetUserType(ctx context.Context, id uint) (*catalog.UserType, error) {
	var model models.UserTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user type not found")
		}
		return nil, fmt.Errorf("failed to find user type: %w", err)
	}
	return catalog.NewUserType(model.ID, model.Status)
}
