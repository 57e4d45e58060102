package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pet-control/internal/domain/settings"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

const settingsRowID = 1

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	var s models.AppSettings
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// Save grava a linha única, criando-a se ainda não existir.
func (r *SettingsGormRepository) Save(ctx context.Context, s *models.AppSettings) error {
	if s.ID == 0 {
		var existing models.AppSettings
		err := r.db.WithContext(ctx).Select("id").Order("id ASC").First(&existing).Error
		switch {
		case err == nil:
			s.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.ID = settingsRowID
		default:
			return err
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"shop_name",
				"logo_url",
				"webhook_url",
				"automation_hour",
				"updated_at",
			}),
		}).
		Create(s).Error
}

// Compile-time check
var _ domain.Repository = (*SettingsGormRepository)(nil)
