package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	SaleDate  time.Time `gorm:"column:sale_date;type:date;not null" json:"sale_date"`

	Client  Client  `gorm:"foreignKey:ClientID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`

	CreatedAt time.Time `json:"created_at"`
}
