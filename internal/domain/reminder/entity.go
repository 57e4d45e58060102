package reminder

import (
	"time"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Dispatch(e *models.AgendaEntry, now time.Time) error {
	if err := CanDispatch(Status(e.Status)); err != nil {
		return err
	}

	e.Status = string(StatusDispatched)
	e.DispatchedAt = &now
	e.ErrorLog = nil
	return nil
}

func Confirm(e *models.AgendaEntry, now time.Time) error {
	if err := CanConfirm(Status(e.Status)); err != nil {
		return err
	}

	e.Status = string(StatusSent)
	e.ConfirmedAt = &now
	return nil
}

func Fail(e *models.AgendaEntry, reason string, now time.Time) error {
	if err := CanFail(Status(e.Status)); err != nil {
		return err
	}

	e.Status = string(StatusFailed)
	e.ErrorLog = &reason
	e.Attempts++
	return nil
}
