package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/flash"
	"github.com/AlMamunFarhad/job-portal/internal/middleware"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/services"
)

type JobHandler struct {
	BaseHandler
	jobService   services.JobService
	lookupRepo   repositories.LookupRepository
	jobsPageSize int
}

func NewJobHandler(jobService services.JobService, lookupRepo repositories.LookupRepository, jobsPageSize int) *JobHandler {
	return &JobHandler{
		jobService:   jobService,
		lookupRepo:   lookupRepo,
		jobsPageSize: jobsPageSize,
	}
}

// FormData handles GET /account/jobs/form-data: the active lookup rows
// offered on the create/edit forms.
func (h *JobHandler) FormData(c *gin.Context) {
	categories, err := h.lookupRepo.ActiveCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	jobTypes, err := h.lookupRepo.ActiveJobTypes()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"job_types":  jobTypes,
	})
}

// Create handles POST /account/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.JobRequest
	if !h.Bind(c, &req) {
		return
	}

	if _, err := h.jobService.Create(middleware.GetUserID(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Job created successfully.")
	c.JSON(http.StatusOK, dto.OK())
}

// MyJobs handles GET /account/jobs?page=N.
func (h *JobHandler) MyJobs(c *gin.Context) {
	page := h.Page(c)
	jobs, total, err := h.jobService.ListMine(middleware.GetUserID(c), page, h.jobsPageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(jobs, total, page, h.jobsPageSize))
}

// Edit handles GET /account/jobs/:id: the owner-scoped fetch backing
// the edit form. A job owned by someone else is a plain 404.
func (h *JobHandler) Edit(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil || job.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, dto.OKWith(job))
}

// Update handles POST /account/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	var req dto.JobRequest
	if !h.Bind(c, &req) {
		return
	}

	if _, err := h.jobService.Update(middleware.GetUserID(c), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Job updated successfully.")
	c.JSON(http.StatusOK, dto.OK())
}

// Delete handles POST /account/jobs/delete (form field job_id). A
// missing or foreign-owned job reports status=true with an error
// flash, never a hard failure; a second delete of the same id takes
// the same soft path.
func (h *JobHandler) Delete(c *gin.Context) {
	jobID := c.PostForm("job_id")

	err := h.jobService.Delete(middleware.GetUserID(c), jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			flash.Set(c, "error", "The job was not found.")
			c.JSON(http.StatusOK, gin.H{"status": true})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Job deleted successfully.")
	c.JSON(http.StatusOK, gin.H{"status": true})
}

// Show handles GET /jobs/:id, the public read path.
func (h *JobHandler) Show(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil {
		if err == repositories.ErrJobNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWith(job))
}
