package notifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/validators"
)

// MessageCreator é a parte da API do Twilio usada aqui.
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Twilio envia o lembrete direto pelo WhatsApp Business do Twilio.
type Twilio struct {
	api  MessageCreator
	from string
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewTwilioWithAPI(client.Api, from)
}

func NewTwilioWithAPI(api MessageCreator, from string) *Twilio {
	return &Twilio{
		api:  api,
		from: strings.TrimSpace(from),
	}
}

func (t *Twilio) Notify(ctx context.Context, msg reminder.Message) error {
	if t.from == "" {
		return reminder.ErrNotifierNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := whatsAppAddress(msg.Phone)
	if to == "" {
		return errors.New("invalid phone for twilio")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.sender())
	params.SetBody(msg.Text)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Printf("twilio: agenda %d sent, SID %s", msg.EntryID, *resp.Sid)
	}
	return nil
}

// "whatsapp:+5511988887777"
func whatsAppAddress(phone string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "whatsapp:")
	digits := reminder.NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	return "whatsapp:+" + digits
}

// O remetente já vem com DDI; não passa pela normalização de clientes.
func (t *Twilio) sender() string {
	return "whatsapp:+" + validators.DigitsOnly(t.from)
}

var _ reminder.Notifier = (*Twilio)(nil)
