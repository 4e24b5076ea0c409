package services

import (
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

// AdminJobRow is one row of the admin job listing: the job, its owner
// and the applicant count.
type AdminJobRow struct {
	Job        models.Job `json:"job"`
	Applicants int64      `json:"applicants"`
}

type AdminService interface {
	ListJobs(page, pageSize int) ([]AdminJobRow, int64, error)
	ListUsers(page, pageSize int) ([]models.User, int64, error)
}

type adminService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewAdminService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) AdminService {
	return &adminService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (s *adminService) ListJobs(page, pageSize int) ([]AdminJobRow, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	jobs, err := s.jobRepo.FindAll(pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}

	rows := make([]AdminJobRow, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.jobRepo.CountApplications(job.ID)
		if err != nil {
			return nil, 0, apperrors.DatabaseError(err)
		}
		rows = append(rows, AdminJobRow{Job: job, Applicants: count})
	}

	total, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return rows, total, nil
}

func (s *adminService) ListUsers(page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	users, err := s.userRepo.FindAll(pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return users, total, nil
}
