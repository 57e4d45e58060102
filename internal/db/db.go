package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/config"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	if cfg.DBDriver == "sqlite" {
		db, err := OpenSQLite(cfg.DBUrl)
		if err != nil {
			log.Fatalf("failed to open sqlite: %v", err)
		}
		return db
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE app_settings
        SET automation_hour = '08:00'
        WHERE automation_hour IS NULL OR automation_hour = ''
    `)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.Sale{},
		&models.AgendaEntry{},
		&models.AppSettings{},
		&models.AuditLog{},
	)
}
