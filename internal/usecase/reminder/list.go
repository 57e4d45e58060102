package reminder

import (
	"context"

	domainReminder "github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type ListReminders struct {
	repo domainReminder.Repository
}

func NewListReminders(repo domainReminder.Repository) *ListReminders {
	return &ListReminders{repo: repo}
}

// Execute devolve a agenda inteira, da data mais antiga para a mais nova.
func (uc *ListReminders) Execute(ctx context.Context) ([]models.AgendaEntry, error) {
	return uc.repo.ListEntries(ctx)
}

// ======================================================
// AUTOMATION STATUS
// ======================================================

type AutomationStatus struct {
	repo     domainReminder.Repository
	timezone string
}

func NewAutomationStatus(
	repo domainReminder.Repository,
	tz string,
) *AutomationStatus {
	return &AutomationStatus{
		repo:     repo,
		timezone: tz,
	}
}

func (uc *AutomationStatus) Execute(ctx context.Context) (domainReminder.Summary, error) {
	today := timezone.Today(uc.timezone)

	entries, err := uc.repo.ListForDate(ctx, today)
	if err != nil {
		return domainReminder.Summary{}, err
	}
	return domainReminder.Summarize(entries, today), nil
}
