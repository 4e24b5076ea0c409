package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	// FindByIDAndOwner filters by both id and owner. A job owned by a
	// different user is reported as not found, matching the soft-fail
	// UX of delete flows.
	FindByIDAndOwner(id, ownerID string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	FindByOwner(ownerID string, limit, offset int) ([]models.Job, error)
	CountByOwner(ownerID string) (int64, error)

	// Admin operations
	FindAll(limit, offset int) ([]models.Job, error)
	CountAll() (int64, error)
	CountApplications(jobID string) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Category").Preload("JobType").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDAndOwner(id, ownerID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}

func (r *JobRepositoryImpl) FindByOwner(ownerID string, limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("JobType").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) FindAll(limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("User").Preload("JobType").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountApplications(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
