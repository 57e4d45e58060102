package models

import "time"

// Linha única de configuração da loja.
type AppSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName       string `gorm:"column:shop_name;size:120;not null;default:'PetControl'" json:"shop_name"`
	LogoURL        string `gorm:"column:logo_url;type:text" json:"logo_url"`
	WebhookURL     string `gorm:"column:webhook_url;type:text" json:"webhook_url"`
	AutomationHour string `gorm:"column:automation_hour;size:8;not null;default:'08:00'" json:"automation_hour"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
