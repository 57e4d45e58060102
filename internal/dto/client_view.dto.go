package dto

import (
	"time"

	"github.com/BruksfildServices01/pet-control/internal/domain/retention"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

// Marcador exibido quando não há dado.
const Missing = "-"

const (
	fallbackName    = "Sem Nome"
	fallbackPet     = "Pet"
	fallbackProduct = "Item"
)

type HistoryItemDTO struct {
	Product     string `json:"product"`
	Date        string `json:"date"`
	DateRaw     string `json:"date_raw"`
	NextContact string `json:"next_contact"`
}

type ClientViewDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	PetName string `json:"pet_name"`

	History      []HistoryItemDTO `json:"history"`
	LastProduct  string           `json:"last_product"`
	LastDate     string           `json:"last_date"`
	NextReminder string           `json:"next_reminder"`
	LastPurchase string           `json:"last_purchase"`
}

func ClientViews(views []retention.ClientView) []ClientViewDTO {
	out := make([]ClientViewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, ClientView(v))
	}
	return out
}

func ClientView(v retention.ClientView) ClientViewDTO {
	history := make([]HistoryItemDTO, 0, len(v.History))
	for _, h := range v.History {
		history = append(history, HistoryItemDTO{
			Product:     orDefault(h.ProductName, fallbackProduct),
			Date:        timezone.FormatBR(h.Date),
			DateRaw:     timezone.FormatISO(h.Date),
			NextContact: brDate(h.NextContact),
		})
	}

	lastProduct := Missing
	if v.LastProduct != nil {
		lastProduct = orDefault(*v.LastProduct, fallbackProduct)
	}

	return ClientViewDTO{
		ID:           v.ClientID,
		Name:         orDefault(v.Name, fallbackName),
		Phone:        orDefault(v.Phone, Missing),
		PetName:      orDefault(v.PetName, fallbackPet),
		History:      history,
		LastProduct:  lastProduct,
		LastDate:     brDate(v.LastDate),
		NextReminder: brDate(v.NextReminder),
		LastPurchase: timezone.FormatISO(v.LastPurchase),
	}
}

func brDate(t *time.Time) string {
	if t == nil {
		return Missing
	}
	return timezone.FormatBR(*t)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
