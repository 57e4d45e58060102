package reminder

import (
	"context"
	"errors"
	"time"
)

var ErrNotifierNotConfigured = errors.New("notifier not configured")

// Message é o que sai para o canal externo (n8n, Twilio).
type Message struct {
	EntryID       uint
	ClientName    string
	Phone         string
	Text          string
	ScheduledDate time.Time
	ScheduledTime string
	Link          string

	ShopName   string
	WebhookURL string
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
