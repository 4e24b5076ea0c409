package repositories

import (
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/models"
)

type LookupRepository interface {
	// ActiveCategories returns active categories ordered by name, as
	// offered on the job create/edit forms.
	ActiveCategories() ([]models.Category, error)
	ActiveJobTypes() ([]models.JobType, error)
	CategoryExists(id string) (bool, error)
	JobTypeExists(id string) (bool, error)
}

type LookupRepositoryImpl struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &LookupRepositoryImpl{db: db}
}

func (r *LookupRepositoryImpl) ActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("status = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func (r *LookupRepositoryImpl) ActiveJobTypes() ([]models.JobType, error) {
	var jobTypes []models.JobType
	err := r.db.Where("status = ?", true).Find(&jobTypes).Error
	return jobTypes, err
}

func (r *LookupRepositoryImpl) CategoryExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LookupRepositoryImpl) JobTypeExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
