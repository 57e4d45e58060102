package settings

import (
	"context"
	"errors"
	"log"

	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainSettings "github.com/BruksfildServices01/pet-control/internal/domain/settings"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

type GetSettings struct {
	repo domainSettings.Repository
}

func NewGetSettings(repo domainSettings.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

// Execute sempre devolve uma configuração: sem linha ou com erro de
// leitura, usa os valores padrão.
func (uc *GetSettings) Execute(ctx context.Context) models.AppSettings {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("app settings: %v", err)
		}
		return domainSettings.Defaults()
	}

	if s.AutomationHour == "" {
		s.AutomationHour = domainSettings.DefaultAutomationHour
	}
	return *s
}
