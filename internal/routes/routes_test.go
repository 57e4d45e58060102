package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/session"
)

const adminPassword = "segredo-da-loja"

type recordingNotifier struct {
	sent []reminder.Message
}

func (n *recordingNotifier) Notify(_ context.Context, msg reminder.Message) error {
	if msg.WebhookURL == "" {
		return reminder.ErrNotifierNotConfigured
	}
	n.sent = append(n.sent, msg)
	return nil
}

type api struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	token    string
	notifier *recordingNotifier
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	// o worker da auditoria grava em paralelo às transações
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	password, err := session.NewPassword("", adminPassword)
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(db))
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	cfg := &config.Config{
		ShopTimezone: "America/Sao_Paulo",
		CORSOrigins:  []string{"*"},
	}

	notifier := &recordingNotifier{}
	r := gin.New()
	RegisterRoutes(r, db, cfg, Infra{
		Audit:    dispatcher,
		Sessions: session.NewManager("test-secret", time.Hour, session.NewMemoryStore()),
		Password: password,
		Notifier: notifier,
	})

	return &api{t: t, db: db, router: r, notifier: notifier}
}

func (a *api) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func (a *api) login() {
	a.t.Helper()

	w, body := a.do(http.MethodPost, "/api/auth/login", gin.H{"password": adminPassword})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	a.token = body["token"].(string)
}

func (a *api) count(model any) int64 {
	a.t.Helper()
	var n int64
	require.NoError(a.t, a.db.Model(model).Count(&n).Error)
	return n
}

// ======================================================
// AUTH
// ======================================================

func TestLoginAndLogout(t *testing.T) {
	a := newAPI(t)

	w, body := a.do(http.MethodPost, "/api/auth/login", gin.H{"password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])

	w, _ = a.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	a.login()

	w, body = a.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	s := body["session"].(map[string]any)
	assert.Equal(t, "admin", s["subject"])
	assert.NotEmpty(t, s["id"])

	w, _ = a.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body = a.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session_revoked", body["error_code"])
}

// ======================================================
// FLUXO PRINCIPAL
// ======================================================

func TestSaleToReminderFlow(t *testing.T) {
	a := newAPI(t)
	a.login()

	// produto
	w, product := a.do(http.MethodPost, "/api/products", gin.H{
		"name": "Ração", "duration_days": 30, "lead_time_days": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := uint(product["id"].(float64))

	w, body := a.do(http.MethodPost, "/api/products", gin.H{"name": "Ração", "duration_days": 10})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "product_already_exists", body["error_code"])

	// venda com cliente novo
	w, body = a.do(http.MethodPost, "/api/sales", gin.H{
		"client_name":  "Ana Silva",
		"client_phone": "(11) 98888-7777",
		"pet_name":     "Thor",
		"product_name": "Ração",
		"sale_date":    "10/01/2025",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, body["client_created"])
	clientID := uint(body["client"].(map[string]any)["id"].(float64))

	// produto inexistente não cria cliente
	w, body = a.do(http.MethodPost, "/api/sales", gin.H{
		"client_name":  "Bruno",
		"client_phone": "21977776666",
		"product_name": "Coleira",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product_not_found", body["error_code"])
	assert.Equal(t, int64(1), a.count(&models.Client{}))

	// histórico
	w, body = a.do(http.MethodGet, "/api/clients/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])
	view := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ração", view["last_product"])
	assert.Equal(t, "10/01/2025", view["last_date"])
	assert.Equal(t, "-", view["next_reminder"])

	// produto em uso
	w, body = a.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "product_in_use", body["error_code"])

	// lembrete
	w, body = a.do(http.MethodPost, "/api/agenda", gin.H{
		"client_id":      clientID,
		"message":        "Oi Ana, a ração do Thor está acabando!",
		"scheduled_date": "2025-02-04",
		"scheduled_time": "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "04/02/2025", body["scheduled_date"])
	entryID := uint(body["id"].(float64))

	w, body = a.do(http.MethodGet, "/api/clients/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "04/02/2025", view["next_reminder"])

	w, body = a.do(http.MethodPost, fmt.Sprintf("/api/agenda/%d/send", entryID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, body["whatsapp_link"], "phone=5511988887777")

	w, body = a.do(http.MethodPost, fmt.Sprintf("/api/agenda/%d/confirm", entryID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sent", body["status"])

	w, body = a.do(http.MethodPost, fmt.Sprintf("/api/agenda/%d/fail", entryID), gin.H{"error": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", body["error_code"])

	// agenda e painel
	w, body = a.do(http.MethodGet, "/api/agenda", nil)
	require.Equal(t, http.StatusOK, w.Code)
	item := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ana Silva", item["client_name"])

	w, body = a.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["unique_client_base"])
	assert.Equal(t, float64(1), stats["messages_sent"])

	w, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/agenda/%d", entryID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body = a.do(http.MethodDelete, fmt.Sprintf("/api/agenda/%d", entryID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "agenda_not_found", body["error_code"])

	// auditoria assíncrona
	assert.Eventually(t, func() bool {
		return a.count(&models.AuditLog{}) >= 5
	}, 2*time.Second, 20*time.Millisecond)

	w, body = a.do(http.MethodGet, "/api/audit-logs?entity=agenda&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["limit"])
	assert.Len(t, body["data"], 2)
}

// ======================================================
// CONFIGURAÇÕES E AUTOMAÇÃO
// ======================================================

func TestSettingsAndAutomation(t *testing.T) {
	a := newAPI(t)

	w, body := a.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PetControl", body["shop_name"])
	assert.Equal(t, "08:00", body["automation_hour"])

	w, _ = a.do(http.MethodPut, "/api/settings", gin.H{"shop_name": "Pet da Ana"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	a.login()

	w, body = a.do(http.MethodPost, "/api/automation/run", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(0), body["processed"])

	client := models.Client{FullName: "Ana Silva", Phone: "11988887777"}
	require.NoError(t, a.db.Create(&client).Error)
	require.NoError(t, a.db.Omit("Client").Create(&models.AgendaEntry{
		ClientID:      &client.ID,
		Message:       "Oi Ana",
		ScheduledDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "09:00",
		Status:        "pending",
	}).Error)

	w, body = a.do(http.MethodPost, "/api/automation/run", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "webhook_not_configured", body["error_code"])

	w, body = a.do(http.MethodPut, "/api/settings", gin.H{"automation_hour": "25:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_automation_hour", body["error_code"])

	w, body = a.do(http.MethodPut, "/api/settings", gin.H{
		"shop_name":       "Pet da Ana",
		"webhook_url":     "https://n8n.test/webhook/pet",
		"automation_hour": "9:15",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "09:15", body["automation_hour"])

	w, body = a.do(http.MethodPost, "/api/automation/run", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(1), body["dispatched"])
	require.Len(t, a.notifier.sent, 1)
	assert.Equal(t, "Pet da Ana", a.notifier.sent[0].ShopName)

	a.token = ""
	w, body = a.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pet da Ana", body["shop_name"])
}
