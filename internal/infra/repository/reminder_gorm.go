package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/domain"
	"github.com/BruksfildServices01/pet-control/internal/domain/reminder"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ReminderGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *ReminderGormRepository) CreateEntry(
	ctx context.Context,
	e *models.AgendaEntry,
) error {
	return r.db.WithContext(ctx).Omit("Client").Create(e).Error
}

func (r *ReminderGormRepository) GetEntry(
	ctx context.Context,
	id uint,
) (*models.AgendaEntry, error) {

	var e models.AgendaEntry
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&e, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *ReminderGormRepository) UpdateEntry(
	ctx context.Context,
	e *models.AgendaEntry,
) error {
	return r.db.WithContext(ctx).Omit("Client").Save(e).Error
}

func (r *ReminderGormRepository) DeleteEntry(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.AgendaEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReminderGormRepository) ListEntries(
	ctx context.Context,
) ([]models.AgendaEntry, error) {

	var entries []models.AgendaEntry
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("scheduled_date ASC").
		Order("scheduled_time ASC").
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ReminderGormRepository) ListDue(
	ctx context.Context,
	day time.Time,
) ([]models.AgendaEntry, error) {

	var entries []models.AgendaEntry
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("status = ? AND scheduled_date <= ?", string(reminder.StatusPending), day).
		Order("scheduled_date ASC").
		Order("scheduled_time ASC").
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ReminderGormRepository) ListForDate(
	ctx context.Context,
	day time.Time,
) ([]models.AgendaEntry, error) {

	var entries []models.AgendaEntry
	if err := r.db.WithContext(ctx).
		Where("scheduled_date = ?", day).
		Order("scheduled_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Compile-time check
var _ reminder.Repository = (*ReminderGormRepository)(nil)
