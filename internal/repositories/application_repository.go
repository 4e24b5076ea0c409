package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/models"
)

var ErrApplicationNotFound = errors.New("job application not found")

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	FindByIDAndOwner(id, ownerID string) (*models.JobApplication, error)
	// Exists reports whether the user already applied to the job.
	Exists(jobID, userID string) (bool, error)
	Delete(id string) error
	// FindByOwner preloads the referenced job and its job type. The
	// Job field is nil for applications whose job was deleted.
	FindByOwner(ownerID string, limit, offset int) ([]models.JobApplication, error)
	CountByOwner(ownerID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByIDAndOwner(id, ownerID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Exists(jobID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.JobApplication{}, "id = ?", id).Error
}

func (r *ApplicationRepositoryImpl) FindByOwner(ownerID string, limit, offset int) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Preload("Job").Preload("Job.JobType").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}
