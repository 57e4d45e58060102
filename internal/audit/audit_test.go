package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

func TestDispatcherWritesAuditLog(t *testing.T) {
	db, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)

	d := NewDispatcher(New(db))

	id := uint(7)
	d.Dispatch(Event{
		Subject:  "admin",
		Action:   "sale_registered",
		Entity:   "sale",
		EntityID: &id,
		Metadata: map[string]any{"product": "Ração"},
	})

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 20*time.Millisecond)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "admin", entry.Subject)
	assert.Equal(t, "sale_registered", entry.Action)
	assert.JSONEq(t, `{"product":"Ração"}`, entry.Metadata)

	require.NoError(t, d.Close(context.Background()))
}

func TestCloseFlushesQueuedEvents(t *testing.T) {
	db, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)

	d := NewDispatcher(New(db))
	for _, action := range []string{"login", "sale_registered", "logout"} {
		d.Dispatch(Event{Subject: "admin", Action: action, Entity: "session"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	// sem espera: Close só volta depois da fila gravada
	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	d := NewDispatcher(nil)
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "late"})
	})
	assert.NoError(t, d.Close(context.Background()))
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		_ = d.Close(context.Background())
	})
}
