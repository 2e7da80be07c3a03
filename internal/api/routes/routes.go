package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/skillbridge/internal/api/handlers"
	"github.com/yoockh/skillbridge/internal/api/middleware"
	"github.com/yoockh/skillbridge/internal/models"
)

type Deps struct {
	Tokens    middleware.TokenParser
	Auth      *handlers.AuthHandler
	Employee  *handlers.EmployeeHandler
	Recruiter *handlers.RecruiterHandler

	// UploadDir is served under UploadPrefix when resumes are stored locally.
	UploadDir    string
	UploadPrefix string
	EnforceRoles bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", handlers.Root)

	if d.UploadDir != "" {
		prefix := d.UploadPrefix
		if prefix == "" {
			prefix = "/uploads"
		}
		r.Static(prefix, d.UploadDir)
	}

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", d.Auth.Signup)
	authGroup.POST("/login", d.Auth.Login)

	employee := api.Group("/employee", middleware.JWTAuth(d.Tokens))
	if d.EnforceRoles {
		employee.Use(middleware.RequireRole(models.RoleEmployee))
	}
	employee.GET("/profile", d.Employee.Profile)
	employee.POST("/github", d.Employee.UpdateGithub)
	employee.POST("/resume", d.Employee.UploadResume)
	employee.GET("/resume/history", d.Employee.ResumeHistory)

	recruiter := api.Group("/recruiter", middleware.JWTAuth(d.Tokens))
	if d.EnforceRoles {
		recruiter.Use(middleware.RequireRole(models.RoleRecruiter))
	}
	recruiter.POST("/matchProfiles", d.Recruiter.MatchProfiles)

	r.NoRoute(handlers.NotFound)
}
