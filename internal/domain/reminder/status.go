package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/httperr"
)

// ===============================
// Agenda Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusDispatched Status = "dispatched"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDispatched, StatusSent, StatusFailed:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanDispatch: envio a partir de pendente, ou reenvio manual de um que falhou.
func CanDispatch(current Status) error {
	if current != StatusPending && current != StatusFailed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm: só o que já foi despachado pode ser confirmado.
func CanConfirm(current Status) error {
	if current != StatusDispatched {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanFail(current Status) error {
	if current != StatusPending && current != StatusDispatched {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// NormalizeClock aceita "H:MM" ou "HH:MM" e devolve "HH:MM".
func NormalizeClock(raw string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid time %q", raw)
	}
	return t.Format("15:04"), nil
}
