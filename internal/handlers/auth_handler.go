package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	"github.com/BruksfildServices01/pet-control/internal/session"
)

type AuthHandler struct {
	password *session.Password
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	password *session.Password,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		password: password,
		sessions: sessions,
		audit:    audit,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a senha.")
		return
	}

	if !h.password.Matches(req.Password) {
		h.audit.Dispatch(audit.Event{
			Subject: session.AdminSubject,
			Action:  "login_failed",
			Entity:  "session",
		})
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	token, s, err := h.sessions.Issue(session.AdminSubject)
	if err != nil {
		log.Printf("login: %v", err)
		httperr.Internal(c, "failed_to_generate_token", "Erro ao iniciar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Subject:  s.Subject,
		Action:   "login",
		Entity:   "session",
		Metadata: map[string]any{"session_id": s.ID},
	})

	httpresp.OK(c, gin.H{
		"token":   token,
		"session": s,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		httperr.Unauthorized(c, "session_not_in_context", "Sessão não encontrada.")
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), s); err != nil {
		respondError(c, err, "failed_to_logout", "Erro ao encerrar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Subject:  s.Subject,
		Action:   "logout",
		Entity:   "session",
		Metadata: map[string]any{"session_id": s.ID},
	})

	httpresp.NoContent(c)
}
