package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/flash"
	"github.com/AlMamunFarhad/job-portal/internal/imaging"
	"github.com/AlMamunFarhad/job-portal/internal/middleware"
	"github.com/AlMamunFarhad/job-portal/internal/services"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

type AccountHandler struct {
	BaseHandler
	userService services.UserService
}

func NewAccountHandler(userService services.UserService) *AccountHandler {
	return &AccountHandler{userService: userService}
}

// Profile handles GET /account/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	user, err := h.userService.Profile(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWith(user))
}

// UpdateProfile handles POST /account/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.Bind(c, &req) {
		return
	}

	if _, err := h.userService.UpdateProfile(middleware.GetUserID(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Profile updated successfully.")
	c.JSON(http.StatusOK, dto.OK())
}

// UpdateAvatar handles POST /account/profile/picture (multipart,
// field "image"). Media errors surface as a validation-shaped error on
// the image field, and the stored avatar stays unchanged.
func (h *AccountHandler) UpdateAvatar(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.RespondValidation(c, validator.FieldErrors{
			"image": {"This field is required"},
		})
		return
	}

	_, err = h.userService.UpdateAvatar(c.Request.Context(), middleware.GetUserID(c), file)
	if err != nil {
		if err == imaging.ErrInvalidImage {
			h.RespondValidation(c, validator.FieldErrors{
				"image": {"The file must be a valid image"},
			})
			return
		}
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeStorageError {
			h.RespondValidation(c, validator.FieldErrors{
				"image": {"Failed to store the image, please try again"},
			})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Profile picture updated successfully.")
	c.JSON(http.StatusOK, dto.OK())
}
