package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AlMamunFarhad/job-portal/internal/auth"
	"github.com/AlMamunFarhad/job-portal/internal/handlers"
	"github.com/AlMamunFarhad/job-portal/internal/middleware"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Account      *handlers.AccountHandler
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Admin        *handlers.AdminHandler
}

func Register(r *gin.Engine, h *Handlers, tokens *auth.TokenManager) {
	api := r.Group("/api/v1")

	// Public
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)
	api.GET("/flash", h.Auth.Flash)
	api.GET("/jobs/:id", h.Jobs.Show)

	// Authenticated
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		authed.GET("/account/profile", h.Account.Profile)
		authed.POST("/account/profile", h.Account.UpdateProfile)
		authed.POST("/account/profile/picture", h.Account.UpdateAvatar)

		authed.GET("/account/jobs/form-data", h.Jobs.FormData)
		authed.GET("/account/jobs", h.Jobs.MyJobs)
		authed.POST("/account/jobs", h.Jobs.Create)
		authed.GET("/account/jobs/:id", h.Jobs.Edit)
		authed.POST("/account/jobs/:id", h.Jobs.Update)
		authed.POST("/account/jobs/delete", h.Jobs.Delete)

		authed.POST("/jobs/:id/apply", h.Applications.Apply)
		authed.GET("/account/applications", h.Applications.AppliedJobs)
		authed.POST("/account/applications/remove", h.Applications.Remove)
	}

	// Admin
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/jobs", h.Admin.Jobs)
		admin.GET("/users", h.Admin.Users)
	}
}
