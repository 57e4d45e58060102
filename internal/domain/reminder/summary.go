package reminder

import (
	"time"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

// Summary conta os lembretes de um dia por status.
type Summary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Dispatched int `json:"dispatched"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}

func Summarize(entries []models.AgendaEntry, day time.Time) Summary {
	var s Summary
	for _, e := range entries {
		if !sameDate(e.ScheduledDate, day) {
			continue
		}

		s.Total++
		switch Status(e.Status) {
		case StatusPending:
			s.Pending++
		case StatusDispatched:
			s.Dispatched++
		case StatusSent:
			s.Sent++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
