package repository

import (
	"alumni-network/backend/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *models.Job) error
	ListRecent() ([]models.Job, error)
	Count() (int64, error)
}

type GormJobRepository struct {
	db *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *GormJobRepository) ListRecent() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *GormJobRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
