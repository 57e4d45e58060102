package reminder

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
)

type DeleteReminder struct {
	repo  domainReminder.Repository
	audit *audit.Dispatcher
}

func NewDeleteReminder(
	repo domainReminder.Repository,
	audit *audit.Dispatcher,
) *DeleteReminder {
	return &DeleteReminder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReminder) Execute(
	ctx context.Context,
	id uint,
	actor string,
) error {

	err := uc.repo.DeleteEntry(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness("agenda_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  actor,
		Action:   "reminder_deleted",
		Entity:   "agenda",
		EntityID: &id,
	})
	return nil
}
