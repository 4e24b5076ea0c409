package services

import (
	"strconv"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

// JobService implements the owner-scoped CRUD contract for jobs:
// mutation and deletion require the acting identity to match the
// stored owner, reads are public.
type JobService interface {
	Create(ownerID string, req *dto.JobRequest) (*models.Job, error)
	Update(ownerID, jobID string, req *dto.JobRequest) (*models.Job, error)
	// Delete reports a missing or foreign-owned job as
	// repositories.ErrJobNotFound, a soft outcome rather than a hard
	// failure.
	Delete(ownerID, jobID string) error
	ListMine(ownerID string, page, pageSize int) ([]models.Job, int64, error)
	Get(jobID string) (*models.Job, error)
}

type jobService struct {
	jobRepo    repositories.JobRepository
	lookupRepo repositories.LookupRepository
	validate   *validator.Validator
}

func NewJobService(jobRepo repositories.JobRepository, lookupRepo repositories.LookupRepository, validate *validator.Validator) JobService {
	return &jobService{
		jobRepo:    jobRepo,
		lookupRepo: lookupRepo,
		validate:   validate,
	}
}

// validateRequest runs the shared create/update rule set: struct rules
// plus lookup-row existence.
func (s *jobService) validateRequest(req *dto.JobRequest) (validator.FieldErrors, error) {
	fields := make(validator.FieldErrors)
	if err := s.validate.Validate(req); err != nil {
		vErr, ok := err.(*validator.ValidationError)
		if !ok {
			return nil, apperrors.InternalError(err)
		}
		fields = vErr.Fields
	}

	if _, bad := fields["category"]; !bad && req.Category != "" {
		exists, err := s.lookupRepo.CategoryExists(req.Category)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if !exists {
			fields.Add("category", "The selected category is invalid")
		}
	}

	if _, bad := fields["jobType"]; !bad && req.JobType != "" {
		exists, err := s.lookupRepo.JobTypeExists(req.JobType)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if !exists {
			fields.Add("jobType", "The selected job type is invalid")
		}
	}

	if _, bad := fields["vacancy"]; !bad && req.Vacancy != "" {
		if n, err := strconv.Atoi(req.Vacancy); err != nil || n < 0 {
			fields.Add("vacancy", "Must be a non-negative integer")
		}
	}

	return fields, nil
}

func (s *jobService) Create(ownerID string, req *dto.JobRequest) (*models.Job, error) {
	fields, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	if !fields.Empty() {
		return nil, &validator.ValidationError{Fields: fields}
	}

	vacancy, _ := strconv.Atoi(req.Vacancy)
	job := &models.Job{
		UserID:          ownerID,
		Title:           req.Title,
		CategoryID:      req.Category,
		JobTypeID:       req.JobType,
		Vacancy:         vacancy,
		Salary:          req.Salary,
		Location:        req.Location,
		Description:     req.Description,
		Benefits:        req.Benefits,
		Responsibility:  req.Responsibility,
		Qualifications:  req.Qualifications,
		Experience:      req.Experience,
		Keywords:        req.Keywords,
		CompanyName:     req.CompanyName,
		CompanyLocation: req.CompanyLocation,
		CompanyWebsite:  req.Website,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return job, nil
}

func (s *jobService) Update(ownerID, jobID string, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	// Owner guard. The update never re-stamps the owner; a mismatch is
	// rejected outright.
	if job.UserID != ownerID {
		return nil, apperrors.ForbiddenError("job", "You do not own this job")
	}

	fields, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	if !fields.Empty() {
		return nil, &validator.ValidationError{Fields: fields}
	}

	vacancy, _ := strconv.Atoi(req.Vacancy)
	job.Title = req.Title
	job.CategoryID = req.Category
	job.JobTypeID = req.JobType
	job.Vacancy = vacancy
	job.Salary = req.Salary
	job.Location = req.Location
	job.Description = req.Description
	job.Benefits = req.Benefits
	job.Responsibility = req.Responsibility
	job.Qualifications = req.Qualifications
	job.Experience = req.Experience
	job.Keywords = req.Keywords
	job.CompanyName = req.CompanyName
	job.CompanyLocation = req.CompanyLocation
	job.CompanyWebsite = req.Website
	job.Category = nil
	job.JobType = nil

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return job, nil
}

func (s *jobService) Delete(ownerID, jobID string) error {
	job, err := s.jobRepo.FindByIDAndOwner(jobID, ownerID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(job.ID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *jobService) ListMine(ownerID string, page, pageSize int) ([]models.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	jobs, err := s.jobRepo.FindByOwner(ownerID, pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	total, err := s.jobRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return jobs, total, nil
}

func (s *jobService) Get(jobID string) (*models.Job, error) {
	return s.jobRepo.FindByID(jobID)
}
