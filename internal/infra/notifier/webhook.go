package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

const webhookTimeout = 10 * time.Second

// Corpo enviado ao webhook (n8n).
type webhookPayload struct {
	ID            uint   `json:"id"`
	ClientName    string `json:"client_name"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	WhatsAppLink  string `json:"whatsapp_link"`
	ShopName      string `json:"shop_name"`
	Timestamp     string `json:"timestamp"`
}

// Webhook publica cada lembrete na URL configurada nas settings.
type Webhook struct {
	client *http.Client
	now    func() time.Time
}

func NewWebhook() *Webhook {
	return &Webhook{
		client: &http.Client{Timeout: webhookTimeout},
		now:    time.Now,
	}
}

func (w *Webhook) Notify(ctx context.Context, msg reminder.Message) error {
	url := strings.TrimSpace(msg.WebhookURL)
	if url == "" {
		return reminder.ErrNotifierNotConfigured
	}

	body, err := json.Marshal(webhookPayload{
		ID:            msg.EntryID,
		ClientName:    msg.ClientName,
		Phone:         msg.Phone,
		Message:       msg.Text,
		ScheduledDate: timezone.FormatISO(msg.ScheduledDate),
		ScheduledTime: msg.ScheduledTime,
		WhatsAppLink:  msg.Link,
		ShopName:      msg.ShopName,
		Timestamp:     w.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

var _ reminder.Notifier = (*Webhook)(nil)
