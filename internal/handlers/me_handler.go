package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		httperr.Unauthorized(c, "session_not_in_context", "Sessão não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"session": s})
}
