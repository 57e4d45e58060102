package retention

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

// Epoch é a "última compra" de quem nunca comprou.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

type HistoryEntry struct {
	SaleID      uint
	ProductID   uint
	ProductName string
	Date        time.Time
	// data em que o cliente deve ser contatado para recompra
	NextContact *time.Time
}

// ClientView é a visão desnormalizada de um cliente: histórico,
// última compra e próximo lembrete pendente. Campos nil = sem dado.
type ClientView struct {
	ClientID uint
	Name     string
	Phone    string
	PetName  string

	History      []HistoryEntry
	LastProduct  *string
	LastDate     *time.Time
	NextReminder *time.Time

	LastPurchase time.Time
}

// BuildClientViews junta clientes, vendas e agenda. Não altera as
// entradas e devolve sempre o mesmo resultado para a mesma entrada.
func BuildClientViews(
	clients []models.Client,
	sales []models.Sale,
	agenda []models.AgendaEntry,
) []ClientView {

	salesByClient := make(map[uint][]models.Sale, len(clients))
	for _, s := range sales {
		salesByClient[s.ClientID] = append(salesByClient[s.ClientID], s)
	}

	nextByClient := nextPendingByClient(agenda)

	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		v := ClientView{
			ClientID:     c.ID,
			Name:         c.FullName,
			Phone:        c.Phone,
			PetName:      c.PetName,
			History:      buildHistory(salesByClient[c.ID]),
			LastPurchase: Epoch,
		}

		if len(v.History) > 0 {
			last := v.History[0]
			name := last.ProductName
			date := last.Date
			v.LastProduct = &name
			v.LastDate = &date
			v.LastPurchase = last.Date
		}

		if next, ok := nextByClient[c.ID]; ok {
			d := next
			v.NextReminder = &d
		}

		views = append(views, v)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].LastPurchase.After(views[j].LastPurchase)
	})

	return views
}

func buildHistory(sales []models.Sale) []HistoryEntry {
	history := make([]HistoryEntry, 0, len(sales))
	for _, s := range sales {
		history = append(history, HistoryEntry{
			SaleID:      s.ID,
			ProductID:   s.ProductID,
			ProductName: s.Product.Name,
			Date:        timezone.DateOf(s.SaleDate),
			NextContact: NextContact(s.SaleDate, s.Product),
		})
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return history
}

// NextContact = data da venda + duração - antecedência.
func NextContact(saleDate time.Time, p models.Product) *time.Time {
	if p.DurationDays <= 0 {
		return nil
	}
	lead := p.LeadTimeDays
	if lead < 0 {
		lead = 0
	}
	d := timezone.DateOf(saleDate).AddDate(0, 0, p.DurationDays-lead)
	return &d
}

// primeiro lembrete pendente (por data) de cada cliente vinculado
func nextPendingByClient(agenda []models.AgendaEntry) map[uint]time.Time {
	next := make(map[uint]time.Time)
	for _, e := range agenda {
		if e.ClientID == nil || reminder.Status(e.Status) != reminder.StatusPending {
			continue
		}

		date := timezone.DateOf(e.ScheduledDate)
		cur, ok := next[*e.ClientID]
		if !ok || date.Before(cur) {
			next[*e.ClientID] = date
		}
	}
	return next
}
