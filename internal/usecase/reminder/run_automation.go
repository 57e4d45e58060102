package reminder

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

// SettingsReader devolve a configuração corrente da loja.
type SettingsReader interface {
	Execute(ctx context.Context) models.AppSettings
}

type AutomationReport struct {
	Processed  int       `json:"processed"`
	Dispatched int       `json:"dispatched"`
	Failed     int       `json:"failed"`
	RanAt      time.Time `json:"ran_at"`
}

// RunAutomation entrega os lembretes pendentes vencidos ao canal
// configurado. Falhas ficam registradas no lembrete; não há nova tentativa.
type RunAutomation struct {
	repo     domainReminder.Repository
	settings SettingsReader
	notifier domainReminder.Notifier
	audit    *audit.Dispatcher
	timezone string

	mu sync.Mutex
}

func NewRunAutomation(
	repo domainReminder.Repository,
	settings SettingsReader,
	notifier domainReminder.Notifier,
	audit *audit.Dispatcher,
	tz string,
) *RunAutomation {
	return &RunAutomation{
		repo:     repo,
		settings: settings,
		notifier: notifier,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *RunAutomation) Execute(
	ctx context.Context,
	actor string,
) (*AutomationReport, error) {

	if !uc.mu.TryLock() {
		return nil, httperr.ErrBusiness("automation_running")
	}
	defer uc.mu.Unlock()

	shop := uc.settings.Execute(ctx)
	today := timezone.Today(uc.timezone)

	entries, err := uc.repo.ListDue(ctx, today)
	if err != nil {
		return nil, err
	}

	report := &AutomationReport{RanAt: timezone.NowIn(uc.timezone)}

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		e := &entries[i]

		sendErr := uc.deliver(ctx, e, shop)
		if errors.Is(sendErr, domainReminder.ErrNotifierNotConfigured) {
			return report, httperr.ErrBusiness("webhook_not_configured")
		}

		now := timezone.NowIn(uc.timezone)
		if sendErr != nil {
			err = domainReminder.Fail(e, sendErr.Error(), now)
		} else {
			err = domainReminder.Dispatch(e, now)
		}
		if err != nil {
			log.Printf("automation: agenda %d: %v", e.ID, err)
			continue
		}

		if err := uc.repo.UpdateEntry(ctx, e); err != nil {
			log.Printf("automation: agenda %d: status update failed: %v", e.ID, err)
			continue
		}

		report.Processed++
		if sendErr != nil {
			report.Failed++
		} else {
			report.Dispatched++
		}
	}

	uc.audit.Dispatch(audit.Event{
		Subject: actor,
		Action:  "automation_run",
		Entity:  "agenda",
		Metadata: map[string]any{
			"processed":  report.Processed,
			"dispatched": report.Dispatched,
			"failed":     report.Failed,
		},
	})

	log.Printf(
		"automation: %d processed, %d dispatched, %d failed",
		report.Processed, report.Dispatched, report.Failed,
	)

	return report, nil
}

func (uc *RunAutomation) deliver(
	ctx context.Context,
	e *models.AgendaEntry,
	shop models.AppSettings,
) error {

	if e.Client == nil {
		return errors.New("client not linked")
	}

	phone := domainReminder.NormalizePhone(e.Client.Phone)
	if phone == "" {
		return errors.New("client without phone")
	}

	return uc.notifier.Notify(ctx, domainReminder.Message{
		EntryID:       e.ID,
		ClientName:    e.Client.FullName,
		Phone:         phone,
		Text:          e.Message,
		ScheduledDate: e.ScheduledDate,
		ScheduledTime: e.ScheduledTime,
		Link:          domainReminder.WhatsAppLink(phone, e.Message),
		ShopName:      shop.ShopName,
		WebhookURL:    shop.WebhookURL,
	})
}
