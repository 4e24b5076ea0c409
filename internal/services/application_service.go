package services

import (
	"net/http"

	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

// ApplicationService tracks a user's applications to jobs. Reads and
// removal are scoped to the applying user.
type ApplicationService interface {
	Apply(userID, jobID string) (*models.JobApplication, error)
	ListMine(userID string, page, pageSize int) ([]models.JobApplication, int64, error)
	// Remove reports a missing or foreign-owned application as
	// repositories.ErrApplicationNotFound, a soft outcome.
	Remove(userID, applicationID string) error
}

type applicationService struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (s *applicationService) Apply(userID, jobID string) (*models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID == userID {
		return nil, apperrors.ForbiddenError("application", "You cannot apply to your own job")
	}

	exists, err := s.appRepo.Exists(jobID, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "application", "You have already applied to this job", http.StatusConflict)
	}

	app := &models.JobApplication{
		UserID: userID,
		JobID:  jobID,
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return app, nil
}

func (s *applicationService) ListMine(userID string, page, pageSize int) ([]models.JobApplication, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	apps, err := s.appRepo.FindByOwner(userID, pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	total, err := s.appRepo.CountByOwner(userID)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return apps, total, nil
}

func (s *applicationService) Remove(userID, applicationID string) error {
	app, err := s.appRepo.FindByIDAndOwner(applicationID, userID)
	if err != nil {
		return err
	}
	if err := s.appRepo.Delete(app.ID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
