package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/session"
)

const ContextSession = "session"

func unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Code:    code,
		Message: message,
	})
}

func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		s, err := sessions.Parse(c.Request.Context(), strings.TrimSpace(parts[1]))
		switch {
		case errors.Is(err, session.ErrRevoked):
			unauthorized(c, "session_revoked", "Sessão encerrada. Faça login novamente.")
			return
		case errors.Is(err, session.ErrInvalidToken):
			unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			return
		case err != nil:
			log.Printf("auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, httperr.HTTPError{
				Code:    "session_store_unavailable",
				Message: "Não foi possível validar a sessão.",
			})
			return
		}

		c.Set(ContextSession, s)
		c.Next()
	}
}

// SessionFrom devolve a sessão colocada pelo AuthMiddleware.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// Actor identifica quem fez a ação nos eventos de auditoria.
func Actor(c *gin.Context) string {
	if s, ok := SessionFrom(c); ok {
		return s.Subject
	}
	return ""
}
