package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/logger"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

type BaseHandler struct{}

// Bind reads a form-encoded, multipart or JSON body into obj. Rule
// validation happens in the services; this only covers malformed
// payloads.
func (h *BaseHandler) Bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.Warn("failed to bind request body", "path", c.Request.URL.Path, "err", err)
		apperrors.HandleError(c, apperrors.New(apperrors.CodeValidationFailed, "request", "Invalid request body", http.StatusBadRequest))
		return false
	}
	return true
}

// Page reads the ?page query parameter, defaulting to 1.
func (h *BaseHandler) Page(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// RespondValidation writes the AJAX-flow envelope for a failed rule
// set: HTTP 200 with status=false and the field error map, mirroring
// how the presentation layer expects inline errors.
func (h *BaseHandler) RespondValidation(c *gin.Context, fields validator.FieldErrors) {
	c.JSON(http.StatusOK, dto.Failed(fields))
}

// HandleServiceError maps service errors to responses: validation
// errors become the status=false envelope, AppErrors go through the
// error boundary, anything else is an internal error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if vErr, ok := err.(*validator.ValidationError); ok {
		h.RespondValidation(c, vErr.Fields)
		return
	}
	apperrors.HandleError(c, err)
}
