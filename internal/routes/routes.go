package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/config"
	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/handlers"
	infraRepo "github.com/BruksfildServices01/pet-control/internal/infra/repository"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	"github.com/BruksfildServices01/pet-control/internal/scheduler"
	"github.com/BruksfildServices01/pet-control/internal/session"
	ucClient "github.com/BruksfildServices01/pet-control/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/pet-control/internal/usecase/dashboard"
	ucReminder "github.com/BruksfildServices01/pet-control/internal/usecase/reminder"
	ucSale "github.com/BruksfildServices01/pet-control/internal/usecase/sale"
	ucSettings "github.com/BruksfildServices01/pet-control/internal/usecase/settings"
)

// Infra reúne o que o main monta antes das rotas.
type Infra struct {
	Audit    *audit.Dispatcher
	Sessions *session.Manager
	Password *session.Password
	Notifier reminder.Notifier
	// nil quando não há bucket configurado
	Logos ucSettings.LogoStore
}

// RegisterRoutes liga handlers e use cases e devolve o agendador da
// automação, já no horário salvo, para o main iniciar e parar.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	infra Infra,
) *scheduler.Automation {

	tz := cfg.ShopTimezone

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	saleRepo := infraRepo.NewSaleGormRepository(db)
	retentionRepo := infraRepo.NewRetentionGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)

	// ======================================================
	// 🧠 USE CASES — SETTINGS + AUTOMAÇÃO
	// ======================================================
	getSettingsUC := ucSettings.NewGetSettings(settingsRepo)

	runAutomationUC := ucReminder.NewRunAutomation(
		reminderRepo,
		getSettingsUC,
		infra.Notifier,
		infra.Audit,
		tz,
	)

	automation := scheduler.NewAutomation(tz, func() {
		if _, err := runAutomationUC.Execute(context.Background(), "scheduler"); err != nil {
			log.Printf("scheduled automation: %v", err)
		}
	})

	updateSettingsUC := ucSettings.NewUpdateSettings(
		settingsRepo,
		infra.Logos,
		automation,
		infra.Audit,
	)

	// ======================================================
	// 🧠 USE CASES — CLIENTES / VENDAS / PAINEL
	// ======================================================
	registerSaleUC := ucSale.NewRegisterSale(saleRepo, infra.Audit, tz)
	addClientUC := ucSale.NewAddClient(saleRepo, infra.Audit, tz)
	listWithHistoryUC := ucClient.NewListClientsWithHistory(retentionRepo)
	getDashboardUC := ucDashboard.NewGetDashboard(retentionRepo, tz)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	scheduleUC := ucReminder.NewScheduleReminder(reminderRepo, infra.Audit)
	sendUC := ucReminder.NewSendReminder(reminderRepo, infra.Audit, tz)
	confirmUC := ucReminder.NewConfirmReminder(reminderRepo, infra.Audit, tz)
	failUC := ucReminder.NewFailReminder(reminderRepo, infra.Audit, tz)
	deleteUC := ucReminder.NewDeleteReminder(reminderRepo, infra.Audit)
	listUC := ucReminder.NewListReminders(reminderRepo)
	statusUC := ucReminder.NewAutomationStatus(reminderRepo, tz)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(infra.Password, infra.Sessions, infra.Audit)
	meHandler := handlers.NewMeHandler()

	clientHandler := handlers.NewClientHandler(db, listWithHistoryUC, addClientUC)
	productHandler := handlers.NewProductHandler(db, infra.Audit)
	saleHandler := handlers.NewSaleHandler(db, registerSaleUC)

	agendaHandler := handlers.NewAgendaHandler(
		scheduleUC,
		sendUC,
		confirmUC,
		failUC,
		deleteUC,
		listUC,
		statusUC,
		runAutomationUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(getDashboardUC)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/settings", settingsHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(infra.Sessions))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// CLIENTES / PRODUTOS / VENDAS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/history", clientHandler.History)
			secured.POST("/clients", clientHandler.Create)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.POST("/sales", saleHandler.Create)
			secured.GET("/sales", saleHandler.List)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/agenda", agendaHandler.List)
			secured.POST("/agenda", agendaHandler.Create)
			secured.GET("/agenda/status", agendaHandler.Status)
			secured.POST("/agenda/:id/send", agendaHandler.Send)
			secured.POST("/agenda/:id/confirm", agendaHandler.Confirm)
			secured.POST("/agenda/:id/fail", agendaHandler.Fail)
			secured.DELETE("/agenda/:id", agendaHandler.Delete)

			secured.POST("/automation/run", agendaHandler.RunAutomation)

			// ------------------------------
			// PAINEL / CONFIGURAÇÕES
			// ------------------------------
			secured.GET("/dashboard", dashboardHandler.Get)
			secured.PUT("/settings", settingsHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	// ======================================================
	// ⏰ AUTOMAÇÃO NO HORÁRIO SALVO
	// ======================================================
	hour := getSettingsUC.Execute(context.Background()).AutomationHour
	if err := automation.Reschedule(hour); err != nil {
		log.Printf("automation: invalid saved hour %q: %v", hour, err)
	}

	return automation
}
