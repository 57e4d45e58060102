package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainSettings "github.com/BruksfildServices01/pet-control/internal/domain/settings"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

// LogoStore guarda um logo enviado como data URI e devolve a URL final.
type LogoStore interface {
	StoreLogo(ctx context.Context, dataURI string) (string, error)
}

// Rescheduler é avisado quando o horário da automação muda.
type Rescheduler interface {
	Reschedule(hour string) error
}

type UpdateSettingsInput struct {
	ShopName       *string
	LogoURL        *string
	WebhookURL     *string
	AutomationHour *string

	Actor string
}

type UpdateSettings struct {
	repo      domainSettings.Repository
	logos     LogoStore
	scheduler Rescheduler
	audit     *audit.Dispatcher
}

func NewUpdateSettings(
	repo domainSettings.Repository,
	logos LogoStore,
	scheduler Rescheduler,
	audit *audit.Dispatcher,
) *UpdateSettings {
	return &UpdateSettings{
		repo:      repo,
		logos:     logos,
		scheduler: scheduler,
		audit:     audit,
	}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	in UpdateSettingsInput,
) (*models.AppSettings, error) {

	// erro de leitura não pode virar padrão gravado por cima da linha real
	s, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	previousHour := s.AutomationHour

	if in.ShopName != nil {
		name := strings.TrimSpace(*in.ShopName)
		if name == "" {
			return nil, httperr.ErrBusiness("invalid_shop_name")
		}
		s.ShopName = name
	}

	if in.WebhookURL != nil {
		hook := strings.TrimSpace(*in.WebhookURL)
		if hook != "" && !strings.HasPrefix(hook, "http://") && !strings.HasPrefix(hook, "https://") {
			return nil, httperr.ErrBusiness("invalid_webhook_url")
		}
		s.WebhookURL = hook
	}

	if in.AutomationHour != nil {
		hour, err := domainSettings.NormalizeHour(*in.AutomationHour)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_automation_hour")
		}
		s.AutomationHour = hour
	}

	if in.LogoURL != nil {
		logo := strings.TrimSpace(*in.LogoURL)
		if strings.HasPrefix(logo, "data:image/") && uc.logos != nil {
			url, err := uc.logos.StoreLogo(ctx, logo)
			if err != nil {
				log.Printf("logo upload failed: %v", err)
				return nil, httperr.ErrBusiness("logo_upload_failed")
			}
			logo = url
		}
		s.LogoURL = logo
	}

	if err := uc.repo.Save(ctx, &s); err != nil {
		return nil, err
	}

	if uc.scheduler != nil && s.AutomationHour != previousHour {
		if err := uc.scheduler.Reschedule(s.AutomationHour); err != nil {
			log.Printf("automation reschedule failed: %v", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  in.Actor,
		Action:   "settings_updated",
		Entity:   "app_settings",
		EntityID: &s.ID,
	})

	return &s, nil
}

func (uc *UpdateSettings) current(ctx context.Context) (models.AppSettings, error) {
	s, err := uc.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domainSettings.Defaults(), nil
	}
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("load app settings: %w", err)
	}

	if s.AutomationHour == "" {
		s.AutomationHour = domainSettings.DefaultAutomationHour
	}
	return *s, nil
}
