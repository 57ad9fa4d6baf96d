package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/auth"
	"github.com/ronankibharath98/JobHunt/internal/middleware"
	"github.com/ronankibharath98/JobHunt/internal/services"
	"github.com/ronankibharath98/JobHunt/internal/storage"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB         *gorm.DB
	Tokens     *auth.Manager
	Storage    storage.Storage
	CORSOrigin string
	// UploadDir, when set, is served statically under /uploads.
	UploadDir string
}

// NewRouter wires services, handlers and routes into a gin engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	userHandler := NewUserHandler(services.NewUserService(cfg.DB), cfg.Tokens, cfg.Storage)
	companyHandler := NewCompanyHandler(services.NewCompanyService(cfg.DB), cfg.Storage)
	jobHandler := NewJobHandler(services.NewJobService(cfg.DB))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(cfg.DB))

	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	authRequired := middleware.RequireAuth(cfg.Tokens)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)
			user.GET("/logout", authRequired, userHandler.Logout)
			user.POST("/profile/update", authRequired, userHandler.UpdateProfile)
			user.PUT("/profile/update", authRequired, userHandler.UpdateProfile)
		}

		company := api.Group("/company", authRequired)
		{
			company.POST("/register", companyHandler.Register)
			company.GET("/get", companyHandler.GetCompanies)
			company.GET("/get/:id", companyHandler.GetCompanyByID)
			company.PUT("/update/:id", companyHandler.UpdateCompany)
		}

		job := api.Group("/job", authRequired)
		{
			job.POST("/post", jobHandler.PostJob)
			job.GET("/get", jobHandler.GetAllJobs)
			job.GET("/get/:id", jobHandler.GetJobByID)
			job.GET("/getadminjobs", jobHandler.GetAdminJobs)
		}

		application := api.Group("/application", authRequired)
		{
			application.GET("/apply/:id", applicationHandler.Apply)
			application.GET("/get", applicationHandler.GetApplications)
			application.GET("/:id/applicants", applicationHandler.GetApplicants)
			application.PUT("/status/:id/update", applicationHandler.UpdateStatus)
		}
	}

	return r
}
