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

type ApplicationHandler struct {
	BaseHandler
	appService   services.ApplicationService
	appsPageSize int
}

func NewApplicationHandler(appService services.ApplicationService, appsPageSize int) *ApplicationHandler {
	return &ApplicationHandler{
		appService:   appService,
		appsPageSize: appsPageSize,
	}
}

// Apply handles POST /jobs/:id/apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	_, err := h.appService.Apply(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		if err == repositories.ErrJobNotFound {
			flash.Set(c, "error", "The job was not found.")
			c.JSON(http.StatusOK, gin.H{"status": false})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "You have applied successfully.")
	c.JSON(http.StatusOK, dto.OK())
}

// AppliedJobs handles GET /account/applications?page=N. Applications
// whose job was deleted are returned with a null job rather than
// dropped or failed.
func (h *ApplicationHandler) AppliedJobs(c *gin.Context) {
	page := h.Page(c)
	apps, total, err := h.appService.ListMine(middleware.GetUserID(c), page, h.appsPageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(apps, total, page, h.appsPageSize))
}

// Remove handles POST /account/applications/remove (form field id).
// A missing application reports status=false with an error flash,
// matching the soft-fail shape of the original flow.
func (h *ApplicationHandler) Remove(c *gin.Context) {
	err := h.appService.Remove(middleware.GetUserID(c), c.PostForm("id"))
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			flash.Set(c, "error", "The job application was not found.")
			c.JSON(http.StatusOK, gin.H{"status": false})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "The application has been removed.")
	c.JSON(http.StatusOK, gin.H{"status": true})
}
