package reminder

import (
	"context"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type ConfirmReminder struct {
	repo     domainReminder.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewConfirmReminder(
	repo domainReminder.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ConfirmReminder {
	return &ConfirmReminder{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *ConfirmReminder) Execute(
	ctx context.Context,
	id uint,
	actor string,
) (*models.AgendaEntry, error) {

	e, err := loadEntry(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if err := domainReminder.Confirm(e, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEntry(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  actor,
		Action:   "reminder_confirmed",
		Entity:   "agenda",
		EntityID: &e.ID,
	})

	return e, nil
}
