package models

import "time"

// Produto com ciclo de recompra: dura DurationDays e o lembrete
// deve sair LeadTimeDays antes do fim.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:150;uniqueIndex;not null" json:"name"`
	DurationDays int    `gorm:"column:duration_days;not null" json:"duration_days"`
	LeadTimeDays int    `gorm:"column:lead_time_days;not null" json:"lead_time_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
