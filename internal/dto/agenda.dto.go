package dto

import (
	"time"

	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type AgendaListDTO struct {
	ID            uint       `json:"id"`
	ClientID      *uint      `json:"client_id"`
	ClientName    string     `json:"client_name"`
	ClientPhone   string     `json:"client_phone"`
	Message       string     `json:"message"`
	ScheduledDate string     `json:"scheduled_date"`
	DateRaw       string     `json:"date_raw"`
	ScheduledTime string     `json:"scheduled_time"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	ErrorLog      *string    `json:"error_log"`
	DispatchedAt  *time.Time `json:"dispatched_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at"`
}

func AgendaList(entries []models.AgendaEntry) []AgendaListDTO {
	out := make([]AgendaListDTO, 0, len(entries))
	for i := range entries {
		out = append(out, AgendaItem(&entries[i]))
	}
	return out
}

func AgendaItem(e *models.AgendaEntry) AgendaListDTO {
	item := AgendaListDTO{
		ID:            e.ID,
		ClientID:      e.ClientID,
		ClientName:    Missing,
		ClientPhone:   Missing,
		Message:       e.Message,
		ScheduledDate: timezone.FormatBR(e.ScheduledDate),
		DateRaw:       timezone.FormatISO(e.ScheduledDate),
		ScheduledTime: e.ScheduledTime,
		Status:        e.Status,
		Attempts:      e.Attempts,
		ErrorLog:      e.ErrorLog,
		DispatchedAt:  e.DispatchedAt,
		ConfirmedAt:   e.ConfirmedAt,
	}

	if e.Client != nil {
		item.ClientName = orDefault(e.Client.FullName, Missing)
		item.ClientPhone = orDefault(e.Client.Phone, Missing)
	}
	return item
}
