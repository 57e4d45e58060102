package retention

import (
	"math"
	"sort"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

const (
	AtRiskDays    = 60
	TopClientsMax = 5
)

type LoyalClient struct {
	Rank      int    `json:"rank"`
	ClientID  uint   `json:"client_id"`
	Name      string `json:"name"`
	Purchases int    `json:"purchases"`
}

type Stats struct {
	MessagesSent     int           `json:"messages_sent"`
	MessagesDue      int           `json:"messages_due"`
	RetentionRate    int           `json:"retention_rate"`
	UniqueClientBase int           `json:"unique_client_base"`
	AtRisk           int           `json:"at_risk"`
	WithoutPurchase  int           `json:"without_purchase"`
	TopClients       []LoyalClient `json:"top_clients"`
}

// ComputeStats calcula os números do painel. today é a data civil
// da loja (ver timezone.Today).
func ComputeStats(
	clients []models.Client,
	sales []models.Sale,
	agenda []models.AgendaEntry,
	today time.Time,
) Stats {

	today = timezone.DateOf(today)

	stats := Stats{
		UniqueClientBase: len(clients),
		TopClients:       []LoyalClient{},
	}

	for _, e := range agenda {
		if timezone.DateOf(e.ScheduledDate).After(today) {
			continue
		}
		switch reminder.Status(e.Status) {
		case reminder.StatusDispatched, reminder.StatusSent:
			stats.MessagesSent++
		case reminder.StatusPending:
			stats.MessagesDue++
		}
	}

	purchases := make(map[uint]int, len(clients))
	lastSale := make(map[uint]time.Time, len(clients))
	for _, s := range sales {
		purchases[s.ClientID]++
		d := timezone.DateOf(s.SaleDate)
		if cur, ok := lastSale[s.ClientID]; !ok || d.After(cur) {
			lastSale[s.ClientID] = d
		}
	}

	returning := 0
	for _, c := range clients {
		n := purchases[c.ID]
		if n > 1 {
			returning++
		}
		if n == 0 {
			stats.WithoutPurchase++
			continue
		}
		if daysBetween(lastSale[c.ID], today) > AtRiskDays {
			stats.AtRisk++
		}
	}

	stats.RetentionRate = retentionRate(returning, len(clients))
	stats.TopClients = topClients(clients, purchases)

	return stats
}

func retentionRate(returning, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(returning)*100/float64(total) + 0.5))
}

func topClients(clients []models.Client, purchases map[uint]int) []LoyalClient {
	ranked := make([]LoyalClient, 0, len(clients))
	for _, c := range clients {
		if n := purchases[c.ID]; n > 0 {
			ranked = append(ranked, LoyalClient{ClientID: c.ID, Name: c.FullName, Purchases: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Purchases > ranked[j].Purchases
	})

	if len(ranked) > TopClientsMax {
		ranked = ranked[:TopClientsMax]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
