package models

import "time"

// Lembrete agendado (tabela agenda).
type AgendaEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	Message       string    `gorm:"type:text;not null" json:"message"`
	ScheduledDate time.Time `gorm:"column:scheduled_date;type:date;not null;index" json:"scheduled_date"`
	ScheduledTime string    `gorm:"column:scheduled_time;size:8;not null" json:"scheduled_time"`

	Status       string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	DispatchedAt *time.Time `json:"dispatched_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
	ErrorLog     *string    `gorm:"column:error_log;type:text" json:"error_log"`
	Attempts     int        `gorm:"not null;default:0" json:"attempts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AgendaEntry) TableName() string {
	return "agenda"
}
