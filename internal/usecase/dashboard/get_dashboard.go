package dashboard

import (
	"context"
	"log"

	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/domain/retention"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type Dashboard struct {
	Stats      retention.Stats  `json:"stats"`
	Tip        retention.Tip    `json:"tip"`
	Automation reminder.Summary `json:"automation"`
}

type GetDashboard struct {
	repo     retention.Repository
	timezone string
}

func NewGetDashboard(repo retention.Repository, tz string) *GetDashboard {
	return &GetDashboard{
		repo:     repo,
		timezone: tz,
	}
}

// Execute nunca falha: sem dados, o painel mostra zeros.
func (uc *GetDashboard) Execute(ctx context.Context) Dashboard {
	today := timezone.Today(uc.timezone)

	snap, err := retention.LoadSnapshot(ctx, uc.repo)
	if err != nil {
		log.Printf("dashboard: %v", err)
		snap = &retention.Snapshot{}
	}

	stats := retention.ComputeStats(snap.Clients, snap.Sales, snap.Agenda, today)

	return Dashboard{
		Stats:      stats,
		Tip:        retention.SmartTip(stats, today),
		Automation: reminder.Summarize(snap.Agenda, today),
	}
}
