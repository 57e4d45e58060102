package retention

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

// Snapshot são as três coleções lidas juntas.
type Snapshot struct {
	Clients []models.Client
	Sales   []models.Sale
	Agenda  []models.AgendaEntry
}

// LoadSnapshot busca as três coleções em paralelo. Qualquer falha
// invalida o conjunto.
func LoadSnapshot(ctx context.Context, repo Repository) (*Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		clients, err := repo.ListClients(gctx)
		if err != nil {
			return fmt.Errorf("fetch clients: %w", err)
		}
		snap.Clients = clients
		return nil
	})

	g.Go(func() error {
		sales, err := repo.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("fetch sales: %w", err)
		}
		snap.Sales = sales
		return nil
	})

	g.Go(func() error {
		agenda, err := repo.ListAgenda(gctx)
		if err != nil {
			return fmt.Errorf("fetch agenda: %w", err)
		}
		snap.Agenda = agenda
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
