package models

import "time"

// Cliente da loja, com um pet. Telefone guardado só com dígitos.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"column:full_name;size:120;not null" json:"full_name"`
	Phone    string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PetName  string `gorm:"column:pet_name;size:120" json:"pet_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
