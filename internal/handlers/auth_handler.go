package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/flash"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/services"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.Bind(c, &req) {
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "You have registered successfully.")
	c.JSON(http.StatusOK, dto.OK())
}

// Login handles POST /auth/login. Bad credentials surface as a
// page-level message, not a field error.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.Bind(c, &req) {
		return
	}

	token, user, err := h.authService.Login(&req)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeInvalidCredentials {
			flash.Set(c, "error", appErr.Message)
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": appErr.Message})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWith(gin.H{
		"access_token": token,
		"user":         user,
	}))
}

// Logout handles POST /auth/logout. Token invalidation is client-side;
// the server clears the flash cookie and confirms.
func (h *AuthHandler) Logout(c *gin.Context) {
	flash.Set(c, "success", "You have been logged out.")
	c.JSON(http.StatusOK, dto.OK())
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.Bind(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(&req); err != nil {
		if err == repositories.ErrUserNotFound {
			flash.Set(c, "error", "No account found for that email.")
			c.JSON(http.StatusOK, gin.H{"status": false})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "A reset token has been emailed to you.")
	c.JSON(http.StatusOK, dto.OK())
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.Bind(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	flash.Set(c, "success", "Your password has been reset.")
	c.JSON(http.StatusOK, dto.OK())
}

// Flash handles GET /flash: the read-once flash message endpoint the
// presentation layer polls after redirects.
func (h *AuthHandler) Flash(c *gin.Context) {
	kind, message, ok := flash.Take(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "message": message})
}
