package retention

import (
	"context"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

type Repository interface {
	// clientes por nome
	ListClients(ctx context.Context) ([]models.Client, error)

	// vendas com o produto carregado
	ListSales(ctx context.Context) ([]models.Sale, error)

	// agenda por data agendada
	ListAgenda(ctx context.Context) ([]models.AgendaEntry, error)
}
