package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Agenda --------
	CreateEntry(
		ctx context.Context,
		e *models.AgendaEntry,
	) error

	GetEntry(
		ctx context.Context,
		id uint,
	) (*models.AgendaEntry, error)

	UpdateEntry(
		ctx context.Context,
		e *models.AgendaEntry,
	) error

	DeleteEntry(
		ctx context.Context,
		id uint,
	) error

	ListEntries(
		ctx context.Context,
	) ([]models.AgendaEntry, error)

	// pendentes com data <= day
	ListDue(
		ctx context.Context,
		day time.Time,
	) ([]models.AgendaEntry, error)

	ListForDate(
		ctx context.Context,
		day time.Time,
	) ([]models.AgendaEntry, error)
}
