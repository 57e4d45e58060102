package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("valores padrão", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("NOTIFIER", "")
		t.Setenv("ADMIN_PASSWORD", "")

		cfg := Load()

		assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.Equal(t, "webhook", cfg.Notifier)
		assert.Equal(t, "America/Sao_Paulo", cfg.ShopTimezone)
		// sem senha o boot falha em session.NewPassword
		assert.Empty(t, cfg.AdminPassword)
	})

	t.Run("lê variáveis de ambiente", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "2")
		t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
		t.Setenv("NOTIFIER", "Twilio")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("S3_BUCKET", "logos")

		cfg := Load()

		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.Equal(t, "twilio", cfg.Notifier)
		assert.Equal(t, ":9090", cfg.Addr())
		assert.True(t, cfg.ObjectStorageEnabled())
	})

	t.Run("ttl inválido usa padrão", func(t *testing.T) {
		t.Setenv("SESSION_TTL_HOURS", "abc")

		assert.Equal(t, 12*time.Hour, Load().SessionTTL)
	})
}
