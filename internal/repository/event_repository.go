package repository

import (
	"alumni-network/backend/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	ListByDate() ([]models.Event, error)
	Count() (int64, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormEventRepository) ListByDate() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *GormEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
