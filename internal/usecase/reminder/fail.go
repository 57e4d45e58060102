package reminder

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

const defaultFailReason = "falha no envio"

type FailReminder struct {
	repo     domainReminder.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewFailReminder(
	repo domainReminder.Repository,
	audit *audit.Dispatcher,
	tz string,
) *FailReminder {
	return &FailReminder{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *FailReminder) Execute(
	ctx context.Context,
	id uint,
	reason string,
	actor string,
) (*models.AgendaEntry, error) {

	e, err := loadEntry(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultFailReason
	}

	if err := domainReminder.Fail(e, reason, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEntry(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  actor,
		Action:   "reminder_failed",
		Entity:   "agenda",
		EntityID: &e.ID,
		Metadata: map[string]any{"reason": reason, "attempts": e.Attempts},
	})

	return e, nil
}
