package timezone

import (
	"errors"
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout   = "2006-01-02"
	BRDateLayout = "02/01/2006"
)

var ErrInvalidDate = errors.New("invalid date")

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// --------------------------------------------------
// Datas civis (sem hora)
// --------------------------------------------------

// DateOf reduz t à data civil, representada à meia-noite UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today é a data civil corrente no fuso da loja.
func Today(tz string) time.Time {
	return DateOf(NowIn(tz))
}

// ParseDate aceita "2006-01-02" ou "02/01/2006".
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}

	layout := DateLayout
	if strings.Contains(raw, "/") {
		layout = BRDateLayout
	}

	t, err := time.ParseInLocation(layout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatBR(t time.Time) string {
	return t.Format(BRDateLayout)
}

func FormatISO(t time.Time) string {
	return t.Format(DateLayout)
}
