package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/services"
)

type AdminHandler struct {
	BaseHandler
	adminService services.AdminService
	pageSize     int
}

func NewAdminHandler(adminService services.AdminService, pageSize int) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		pageSize:     pageSize,
	}
}

// Jobs handles GET /admin/jobs?page=N: every job with its owner and
// applicant count.
func (h *AdminHandler) Jobs(c *gin.Context) {
	page := h.Page(c)
	rows, total, err := h.adminService.ListJobs(page, h.pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(rows, total, page, h.pageSize))
}

// Users handles GET /admin/users?page=N.
func (h *AdminHandler) Users(c *gin.Context) {
	page := h.Page(c)
	users, total, err := h.adminService.ListUsers(page, h.pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(users, total, page, h.pageSize))
}
