package reminder

import (
	"context"
	"log"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type SendOutput struct {
	Entry *models.AgendaEntry
	Link  string
}

// SendReminder monta o link do WhatsApp e marca o lembrete como
// despachado. A confirmação de entrega é um passo separado.
type SendReminder struct {
	repo     domainReminder.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewSendReminder(
	repo domainReminder.Repository,
	audit *audit.Dispatcher,
	tz string,
) *SendReminder {
	return &SendReminder{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *SendReminder) Execute(
	ctx context.Context,
	id uint,
	actor string,
) (*SendOutput, error) {

	e, err := loadEntry(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	if e.Client == nil {
		return nil, httperr.ErrBusiness("client_not_linked")
	}
	if domainReminder.NormalizePhone(e.Client.Phone) == "" {
		return nil, httperr.ErrBusiness("missing_phone")
	}

	link := domainReminder.WhatsAppLink(e.Client.Phone, e.Message)

	if err := domainReminder.Dispatch(e, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEntry(ctx, e); err != nil {
		log.Printf("agenda %d: status update failed: %v", e.ID, err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  actor,
		Action:   "reminder_dispatched",
		Entity:   "agenda",
		EntityID: &e.ID,
		Metadata: map[string]any{"channel": "link"},
	})

	return &SendOutput{Entry: e, Link: link}, nil
}
