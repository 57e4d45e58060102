package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

const (
	DefaultShopName       = "PetControl"
	DefaultAutomationHour = "08:00"
)

type Repository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Save(ctx context.Context, s *models.AppSettings) error
}

// Defaults é usado quando a linha de configuração não existe ou não
// pôde ser lida.
func Defaults() models.AppSettings {
	return models.AppSettings{
		ShopName:       DefaultShopName,
		LogoURL:        "",
		AutomationHour: DefaultAutomationHour,
	}
}

// ParseHour aceita "HH:MM" ou "HH:MM:SS" e devolve hora e minuto.
func ParseHour(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)

	layout := "15:04"
	if strings.Count(raw, ":") == 2 {
		layout = "15:04:05"
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid automation hour %q", raw)
	}
	return t.Hour(), t.Minute(), nil
}

// NormalizeHour devolve a hora no formato guardado ("HH:MM").
func NormalizeHour(raw string) (string, error) {
	h, m, err := ParseHour(raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}
