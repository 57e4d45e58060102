package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	ucSettings "github.com/BruksfildServices01/pet-control/internal/usecase/settings"
)

type SettingsHandler struct {
	get    *ucSettings.GetSettings
	update *ucSettings.UpdateSettings
}

func NewSettingsHandler(
	get *ucSettings.GetSettings,
	update *ucSettings.UpdateSettings,
) *SettingsHandler {
	return &SettingsHandler{get: get, update: update}
}

type UpdateSettingsRequest struct {
	ShopName       *string `json:"shop_name,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	WebhookURL     *string `json:"webhook_url,omitempty"`
	AutomationHour *string `json:"automation_hour,omitempty"`
}

// Get é público: a tela de login usa nome e logo da loja.
func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.get.Execute(c.Request.Context()))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), ucSettings.UpdateSettingsInput{
		ShopName:       req.ShopName,
		LogoURL:        req.LogoURL,
		WebhookURL:     req.WebhookURL,
		AutomationHour: req.AutomationHour,
		Actor:          middleware.Actor(c),
	})
	if err != nil {
		respondError(c, err, "failed_to_update_settings", "Erro ao salvar configurações.")
		return
	}

	httpresp.OK(c, s)
}
