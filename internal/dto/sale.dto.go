package dto

import (
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

type SaleListDTO struct {
	ID          uint   `json:"id"`
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	PetName     string `json:"pet_name"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	SaleDate    string `json:"sale_date"`
	DateRaw     string `json:"date_raw"`
}

func SaleList(sales []models.Sale) []SaleListDTO {
	out := make([]SaleListDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleListDTO{
			ID:          s.ID,
			ClientID:    s.ClientID,
			ClientName:  orDefault(s.Client.FullName, fallbackName),
			PetName:     orDefault(s.Client.PetName, fallbackPet),
			ProductID:   s.ProductID,
			ProductName: orDefault(s.Product.Name, fallbackProduct),
			SaleDate:    timezone.FormatBR(s.SaleDate),
			DateRaw:     timezone.FormatISO(s.SaleDate),
		})
	}
	return out
}
