package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pet-control/internal/domain/sale"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SaleGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *SaleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *SaleGormRepository) FindClientByPhone(
	ctx context.Context,
	phone string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *SaleGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// --------------------------------------------------
// Product
// --------------------------------------------------

func (r *SaleGormRepository) GetProductByName(
	ctx context.Context,
	name string,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&product).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// --------------------------------------------------
// Sale
// --------------------------------------------------

func (r *SaleGormRepository) CreateSale(
	ctx context.Context,
	s *models.Sale,
) error {
	return r.db.WithContext(ctx).Omit("Client", "Product").Create(s).Error
}

// Compile-time check
var _ domain.Repository = (*SaleGormRepository)(nil)
