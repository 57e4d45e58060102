package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/pet-control/internal/usecase/dashboard"
)

type DashboardHandler struct {
	get *ucDashboard.GetDashboard
}

func NewDashboardHandler(get *ucDashboard.GetDashboard) *DashboardHandler {
	return &DashboardHandler{get: get}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.get.Execute(c.Request.Context()))
}
