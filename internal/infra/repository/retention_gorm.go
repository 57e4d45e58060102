package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pet-control/internal/domain/retention"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

type RetentionGormRepository struct {
	db *gorm.DB
}

func NewRetentionGormRepository(db *gorm.DB) *RetentionGormRepository {
	return &RetentionGormRepository{db: db}
}

func (r *RetentionGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *RetentionGormRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("sale_date DESC").
		Order("id DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *RetentionGormRepository) ListAgenda(ctx context.Context) ([]models.AgendaEntry, error) {
	var agenda []models.AgendaEntry
	if err := r.db.WithContext(ctx).
		Order("scheduled_date ASC").
		Order("id ASC").
		Find(&agenda).Error; err != nil {
		return nil, err
	}
	return agenda, nil
}

// Compile-time check
var _ domain.Repository = (*RetentionGormRepository)(nil)
