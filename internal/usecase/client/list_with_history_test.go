package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

type stubRepo struct {
	clients []models.Client
	sales   []models.Sale
	agenda  []models.AgendaEntry
	err     error
}

func (s stubRepo) ListClients(context.Context) ([]models.Client, error) {
	return s.clients, nil
}

func (s stubRepo) ListSales(context.Context) ([]models.Sale, error) {
	return s.sales, nil
}

func (s stubRepo) ListAgenda(context.Context) ([]models.AgendaEntry, error) {
	return s.agenda, s.err
}

func TestListClientsWithHistory(t *testing.T) {
	clientID := uint(1)
	repo := stubRepo{
		clients: []models.Client{{ID: 1, FullName: "Ana Silva"}},
		sales: []models.Sale{{
			ID: 1, ClientID: 1, ProductID: 10,
			Product:  models.Product{ID: 10, Name: "Ração", DurationDays: 30},
			SaleDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		agenda: []models.AgendaEntry{
			{ClientID: &clientID, Status: "pending", ScheduledDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ClientID: &clientID, Status: "sent", ScheduledDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	views := NewListClientsWithHistory(repo).Execute(context.Background())

	require.Len(t, views, 1)
	require.NotNil(t, views[0].NextReminder)
	assert.Equal(t, "2025-01-10", views[0].NextReminder.Format("2006-01-02"))
}

func TestListClientsWithHistoryFailsSoft(t *testing.T) {
	repo := stubRepo{
		clients: []models.Client{{ID: 1, FullName: "Ana Silva"}},
		err:     errors.New("connection refused"),
	}

	views := NewListClientsWithHistory(repo).Execute(context.Background())

	assert.NotNil(t, views)
	assert.Empty(t, views)
}
