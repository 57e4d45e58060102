package sale

import (
	"context"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

type Repository interface {
	// Transaction executa fn com um repositório ligado à mesma transação.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	FindClientByPhone(
		ctx context.Context,
		phone string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Product --------
	GetProductByName(
		ctx context.Context,
		name string,
	) (*models.Product, error)

	// -------- Sale --------
	CreateSale(
		ctx context.Context,
		s *models.Sale,
	) error
}
