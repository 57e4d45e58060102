package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/infra/notifier"
	"github.com/BruksfildServices01/pet-control/internal/infra/storage"
	"github.com/BruksfildServices01/pet-control/internal/routes"
	"github.com/BruksfildServices01/pet-control/internal/session"
)

const shutdownTimeout = 15 * time.Second

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// 1️⃣ Sessões
	// --------------------------------------------------
	var revocations session.RevocationStore = session.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer client.Close()
		revocations = session.NewRedisStore(client)
	}

	password, err := session.NewPassword(cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("admin password: %v", err)
	}

	// --------------------------------------------------
	// 2️⃣ Canal de envio e storage
	// --------------------------------------------------
	var channel reminder.Notifier = notifier.NewWebhook()
	if cfg.Notifier == "twilio" {
		channel = notifier.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
	}

	infra := routes.Infra{
		Sessions: session.NewManager(cfg.JWTSecret, cfg.SessionTTL, revocations),
		Password: password,
		Notifier: channel,
	}
	if cfg.ObjectStorageEnabled() {
		infra.Logos = storage.NewLogoS3(cfg)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	infra.Audit = auditDispatcher

	// --------------------------------------------------
	// 3️⃣ HTTP
	// --------------------------------------------------
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	automation := routes.RegisterRoutes(r, db, cfg, infra)
	automation.Start()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	automation.Stop(shutdownCtx)
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Printf("audit flush: %v", err)
	}

	log.Println("bye")
}
