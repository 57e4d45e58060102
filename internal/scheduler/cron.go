package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/pet-control/internal/domain/settings"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

// Automation roda uma tarefa por dia no horário configurado da loja.
type Automation struct {
	cron *cron.Cron
	job  func()

	mu    sync.Mutex
	entry cron.EntryID
	hour  string
}

func NewAutomation(tz string, job func()) *Automation {
	return &Automation{
		cron: cron.New(cron.WithLocation(timezone.Location(tz))),
		job:  job,
	}
}

// Reschedule troca o horário diário ("HH:MM").
func (a *Automation) Reschedule(hour string) error {
	h, m, err := settings.ParseHour(hour)
	if err != nil {
		return err
	}
	spec := fmt.Sprintf("%d %d * * *", m, h)

	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.cron.AddFunc(spec, a.job)
	if err != nil {
		return fmt.Errorf("schedule automation: %w", err)
	}

	if a.entry != 0 {
		a.cron.Remove(a.entry)
	}
	a.entry = id
	a.hour = fmt.Sprintf("%02d:%02d", h, m)

	log.Printf("automation scheduled daily at %s", a.hour)
	return nil
}

func (a *Automation) Hour() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hour
}

// Next devolve a próxima execução a partir de from.
func (a *Automation) Next(from time.Time) (time.Time, bool) {
	a.mu.Lock()
	id := a.entry
	a.mu.Unlock()

	if id == 0 {
		return time.Time{}, false
	}
	e := a.cron.Entry(id)
	if !e.Valid() {
		return time.Time{}, false
	}
	return e.Schedule.Next(from), true
}

func (a *Automation) Start() {
	a.cron.Start()
}

// Stop espera a execução em andamento terminar ou o ctx expirar.
func (a *Automation) Stop(ctx context.Context) {
	select {
	case <-a.cron.Stop().Done():
	case <-ctx.Done():
		log.Println("automation stop: timeout waiting for running job")
	}
}
