package reminder

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

func loadEntry(
	ctx context.Context,
	repo domainReminder.Repository,
	id uint,
) (*models.AgendaEntry, error) {

	e, err := repo.GetEntry(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("agenda_not_found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
