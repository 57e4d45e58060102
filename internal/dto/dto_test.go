package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pet-control/internal/domain/retention"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClientViewWithoutData(t *testing.T) {
	got := ClientView(retention.ClientView{ClientID: 3, LastPurchase: retention.Epoch})

	assert.Equal(t, "Sem Nome", got.Name)
	assert.Equal(t, "-", got.Phone)
	assert.Equal(t, "Pet", got.PetName)
	assert.Equal(t, "-", got.LastProduct)
	assert.Equal(t, "-", got.LastDate)
	assert.Equal(t, "-", got.NextReminder)
	assert.Equal(t, "1970-01-01", got.LastPurchase)
	assert.NotNil(t, got.History)
	assert.Empty(t, got.History)
}

func TestClientViewFormatsDates(t *testing.T) {
	last := day(2025, time.January, 5)
	next := day(2025, time.January, 10)
	contact := day(2025, time.January, 30)
	product := "Ração"

	got := ClientView(retention.ClientView{
		ClientID: 1,
		Name:     "Ana Silva",
		Phone:    "11988887777",
		PetName:  "Thor",
		History: []retention.HistoryEntry{
			{ProductName: "Ração", Date: last, NextContact: &contact},
			{ProductName: "", Date: day(2024, time.December, 1)},
		},
		LastProduct:  &product,
		LastDate:     &last,
		NextReminder: &next,
		LastPurchase: last,
	})

	assert.Equal(t, "Ração", got.LastProduct)
	assert.Equal(t, "05/01/2025", got.LastDate)
	assert.Equal(t, "10/01/2025", got.NextReminder)
	assert.Equal(t, "2025-01-05", got.LastPurchase)

	require.Len(t, got.History, 2)
	assert.Equal(t, HistoryItemDTO{
		Product:     "Ração",
		Date:        "05/01/2025",
		DateRaw:     "2025-01-05",
		NextContact: "30/01/2025",
	}, got.History[0])
	assert.Equal(t, "Item", got.History[1].Product)
	assert.Equal(t, "-", got.History[1].NextContact)
}

func TestAgendaList(t *testing.T) {
	clientID := uint(1)
	entries := []models.AgendaEntry{
		{
			ID:            1,
			ClientID:      &clientID,
			Client:        &models.Client{ID: 1, FullName: "Ana Silva", Phone: "11988887777"},
			ScheduledDate: day(2025, time.January, 10),
			ScheduledTime: "09:00",
			Status:        "pending",
		},
		{ID: 2, ScheduledDate: day(2025, time.February, 1), Status: "failed"},
	}

	got := AgendaList(entries)
	require.Len(t, got, 2)

	assert.Equal(t, "Ana Silva", got[0].ClientName)
	assert.Equal(t, "11988887777", got[0].ClientPhone)
	assert.Equal(t, "10/01/2025", got[0].ScheduledDate)
	assert.Equal(t, "2025-01-10", got[0].DateRaw)

	assert.Equal(t, "-", got[1].ClientName)
	assert.Equal(t, "-", got[1].ClientPhone)
	assert.Nil(t, got[1].ClientID)
}
