package reminder

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type ScheduleInput struct {
	ClientID uint
	Message  string
	Date     string
	Time     string

	Actor string
}

type ScheduleReminder struct {
	repo  domainReminder.Repository
	audit *audit.Dispatcher
}

func NewScheduleReminder(
	repo domainReminder.Repository,
	audit *audit.Dispatcher,
) *ScheduleReminder {
	return &ScheduleReminder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ScheduleReminder) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*models.AgendaEntry, error) {

	message := strings.TrimSpace(in.Message)
	if in.ClientID == 0 ||
		message == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// 1️⃣ Cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data e hora
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	clock, err := domainReminder.NormalizeClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	entry := &models.AgendaEntry{
		ClientID:      &client.ID,
		Message:       message,
		ScheduledDate: date,
		ScheduledTime: clock,
		Status:        string(domainReminder.InitialStatus()),
	}

	if err := uc.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	entry.Client = client

	uc.audit.Dispatch(audit.Event{
		Subject:  in.Actor,
		Action:   "reminder_scheduled",
		Entity:   "agenda",
		EntityID: &entry.ID,
		Metadata: map[string]any{
			"client_id":      client.ID,
			"scheduled_date": timezone.FormatISO(date),
			"scheduled_time": clock,
		},
	})

	return entry, nil
}
